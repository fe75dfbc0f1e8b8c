// Package qr renders a QR code with a logo composited over its centre and writes it as a PNG.
//
// The pipeline is:
//  1. encode the target at the highest error correction level;
//  2. render the code and scale it to the exact output size;
//  3. load the logo and resize it to a square;
//  4. draw the logo over the centre of the code;
//  5. write the result next to the output path and rename it into place.
package qr

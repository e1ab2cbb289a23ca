// Package optimize turns raw image bytes into a bounded working bitmap
// the rest of the pipeline can afford to hold in memory.
//
// What:
//
//   - Optimize decodes JPEG, PNG, GIF, WebP, BMP and TIFF bytes,
//     applies the EXIF orientation tag (camera captures arrive sideways
//     otherwise), and downscales so the long edge never exceeds a
//     configured cap. Images already within the cap pass through at
//     full resolution; nothing is ever upscaled.
//   - The result is an Image: an NRGBA bitmap plus its dimensions and
//     the display label of wherever the bytes came from.
//
// Why:
//
//   - A modern phone camera emits 50-megapixel frames. Decoding one and
//     slicing it into 81 pieces without the cap blows the memory budget
//     of exactly the devices this pipeline targets; the cap is
//     load-bearing, not cosmetic.
//
// Complexity:
//
//   - Optimize: O(W×H) decode plus O(W'×H') resample, where W'×H' are
//     the capped dimensions.
//
// Errors:
//
//   - ErrEmptyInput: zero-length byte slice.
//   - ErrDecode: bytes that no registered decoder accepts.
//   - ErrInvalidCap: an Optimizer configured with a cap below 1.
package optimize

// Package source obtains raw image bytes for the puzzle pipeline from
// one of three places: a bundled asset catalog, a user-picked file, or
// a platform camera capture.
//
// What:
//
//   - Source is the single contract downstream code sees: Obtain
//     returns raw bytes plus a display label, or a classified error.
//   - Catalog enumerates bundled artwork from a YAML manifest over an
//     fs.FS (embed.FS-friendly) and can pick an entry uniformly at
//     random.
//   - File wraps a path on disk, the gallery-pick case.
//   - Capture wraps a platform capture callback, the camera case; the
//     callback's EXIF orientation is honored downstream by the
//     optimizer, not here.
//
// Why:
//
//   - The pipeline should not care where bytes come from. Permission
//     prompts, pickers and camera plumbing live behind the Source
//     boundary; the session only sees bytes, a label, and the error
//     taxonomy below.
//
// Errors:
//
//   - ErrSourceUnavailable: permission denied, user cancelled, or the
//     underlying file is missing.
//   - ErrCaptureFailed: the camera pipeline itself errored.
//   - ErrEmptyCatalog: a manifest with no entries.
//   - ErrBadManifest: a manifest that does not parse or names entries
//     without a file.
//
// All errors are recoverable at the session boundary: surface a
// message, keep the previous puzzle.
package source

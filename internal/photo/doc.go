// Package photo produces the sample photos used by the editor for option
// and stem images.
//
// Two producers share one plan and one naming scheme, so files written by
// either can replace the other's:
//   - Downloader fetches seeded photos from picsum.photos
//   - Synthesizer renders placeholder photos locally, without network
//
// File names follow "<category>-<index>.jpg" with a two-digit index,
// e.g. "opt-01.jpg", "stem-06.jpg".
package photo

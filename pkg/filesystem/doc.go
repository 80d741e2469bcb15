// Package filesystem provides filesystem implementations for cheatnav.
//
// The FS interface is the narrow surface the configuration loader needs:
// an existence check, a read stream, and the two write operations used by
// `cheatnav config init`. NewOS backs it with the real filesystem and
// NewAferoFS with any afero.Fs, which tests use with afero.NewMemMapFs.
package filesystem

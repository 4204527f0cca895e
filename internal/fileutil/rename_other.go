//go:build !linux

package fileutil

func renameNoReplace(source, destination string) error {
	return renameChecked(source, destination)
}

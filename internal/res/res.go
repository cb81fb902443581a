// Package res describes the Android resource tree the generated launcher
// icons are written into: the mipmap density table, file names, and paths.
package res

import "path/filepath"

const (
	// DefaultRoot is the Android resource directory, relative to the
	// repository root the tool is run from.
	DefaultRoot = "android/app/src/main/res"

	// IconName and RoundIconName are the launcher icon file names Android
	// expects inside each mipmap folder.
	IconName      = "ic_launcher.png"
	RoundIconName = "ic_launcher_round.png"

	DirPerm = 0755
)

// Density pairs a mipmap resource folder with the launcher icon pixel size
// that belongs in it.
type Density struct {
	Folder string
	Size   int
}

// Densities returns the launcher icon density table in ascending size order.
// Callers receive a fresh copy; the table itself never changes at runtime.
func Densities() []Density {
	return []Density{
		{Folder: "mipmap-mdpi", Size: 48},
		{Folder: "mipmap-hdpi", Size: 72},
		{Folder: "mipmap-xhdpi", Size: 96},
		{Folder: "mipmap-xxhdpi", Size: 144},
		{Folder: "mipmap-xxxhdpi", Size: 192},
	}
}

// IconPath returns the output path for one icon file.
func IconPath(root, folder, name string) string {
	return filepath.Join(root, folder, name)
}

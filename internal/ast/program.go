package ast

import (
	"fmt"
	"os"
	"path/filepath"
)

type Loc struct {
	Name  string
	Dir   string
	Path  string
	IsDir bool
}

func LocFromPath(fullPath string) (*Loc, error) {
	loc := new(Loc)
	loc.Path = fullPath

	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, err
	}

	mode := info.Mode()
	loc.IsDir = mode.IsDir()
	loc.Name = filepath.Base(fullPath)

	if mode.IsDir() {
		loc.Dir = filepath.Base(fullPath)
	} else {
		loc.Dir = filepath.Base(filepath.Dir(fullPath))
	}

	return loc, nil
}

func (l Loc) String() string {
	return fmt.Sprintf(
		"Name: %s | Dir: %s | Path: %s | isDir: %v",
		l.Name,
		l.Dir,
		l.Path,
		l.IsDir,
	)
}

// File is one parsed source file.
type File struct {
	Loc  *Loc
	Body *BlockStmt
}

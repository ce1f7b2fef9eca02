// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package stagingdir builds output directories in a temporary location and
// moves them into place once they are complete.
package stagingdir

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// D is a staging directory.
//
// A D is either committed to its destination or destroyed. Destroy is safe to
// call after Commit, so a deferred Destroy cleans up after any failure.
type D struct {
	// parent is the directory that D was created under.
	parent string
	// path is the staging directory. It is empty once D is committed or
	// destroyed.
	path string
}

// New creates a staging directory under parent, named with prefix. If parent
// is empty, the system temporary directory is used.
func New(parent, prefix string) (*D, error) {
	path, err := ioutil.TempDir(parent, prefix)
	if err != nil {
		return nil, errors.Wrap(err, "creating staging directory")
	}
	return &D{parent: parent, path: path}, nil
}

// Path joins components onto the staging directory.
//
// Path panics if D has been committed or destroyed.
func (sd *D) Path(components ...string) string {
	if sd.path == "" {
		panic("staging directory is no longer active")
	}
	return filepath.Join(append([]string{sd.path}, components...)...)
}

// Destroy deletes the staging directory and its contents, if it still exists.
func (sd *D) Destroy() error {
	if sd.path == "" {
		return nil
	}
	if err := os.RemoveAll(sd.path); err != nil {
		return errors.Wrapf(err, "removing staging directory %q", sd.path)
	}
	sd.path = ""
	return nil
}

// Commit moves the staging directory to dest, replacing anything already
// there.
//
// An existing dest is first renamed aside, so dest is never observed
// partially written.
func (sd *D) Commit(dest string) error {
	if sd.path == "" {
		return errors.New("staging directory is no longer active")
	}

	var displaced string
	if _, err := os.Lstat(dest); err == nil {
		holder, err := ioutil.TempDir(sd.parent, "displaced")
		if err != nil {
			return errors.Wrap(err, "creating displacement directory")
		}
		defer os.RemoveAll(holder)

		displaced = filepath.Join(holder, filepath.Base(dest))
		if err := os.Rename(dest, displaced); err != nil {
			return errors.Wrapf(err, "moving %q aside", dest)
		}
	}

	if err := os.Rename(sd.path, dest); err != nil {
		if displaced != "" {
			// Put the original back.
			_ = os.Rename(displaced, dest)
		}
		return errors.Wrapf(err, "moving %q into place at %q", sd.path, dest)
	}
	sd.path = ""
	return nil
}

package misc

import (
	"os"
	"path/filepath"

	multierror "github.com/hashicorp/go-multierror"
)

// WriteFileAtomic writes data to a temporary file in the same directory as
// path, then renames it into place.  On failure the temporary file is
// removed and path is left untouched.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := f.Name()

	var errs multierror.Error
	if _, err := f.Write(data); err != nil {
		errs.Errors = append(errs.Errors, err)
	}
	if err := f.Sync(); err != nil {
		errs.Errors = append(errs.Errors, err)
	}
	if err := f.Close(); err != nil {
		errs.Errors = append(errs.Errors, err)
	}
	if len(errs.Errors) == 0 {
		if err := os.Chmod(tmpName, perm); err != nil {
			errs.Errors = append(errs.Errors, err)
		}
	}
	if len(errs.Errors) == 0 {
		if err := os.Rename(tmpName, path); err != nil {
			errs.Errors = append(errs.Errors, err)
		}
	}

	if err := ErrorOrNil(errs); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

// Released under an MIT license. See LICENSE.

// Package history loads and saves the interactive history file.
// While a history file is open it is locked so that two REPLs
// do not interleave their reads and writes.
package history

import (
	"errors"
	"io"
	"os"
)

// Load opens the file at path and passes it to read. A missing file is
// not an error; there is simply no history yet.
func Load(path string, read func(r io.Reader) (int, error)) error {
	if path == "" {
		return nil
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}

	return locked(f, func() error {
		_, err := read(f)

		return err
	})
}

// Save creates or truncates the file at path and passes it to write.
func Save(path string, write func(w io.Writer) (int, error)) error {
	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600) //nolint:gomnd
	if err != nil {
		return err
	}

	return locked(f, func() error {
		// Truncate only once the lock is held.
		if err := f.Truncate(0); err != nil {
			return err
		}

		_, err := write(f)

		return err
	})
}

func locked(f *os.File, use func() error) error {
	err := lock(f)
	if err == nil {
		err = use()

		if uerr := unlock(f); err == nil {
			err = uerr
		}
	}

	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return err
}

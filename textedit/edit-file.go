package textedit

import (
	"hash/crc32"
	"io"
	"iter"
	"os"
	"path/filepath"
)

// EditFile rewrites fileName through editor. The new content is written to a
// temporary file next to the original and renamed over it only if the editor
// succeeds and the content actually changed, so a failed edit never leaves a
// partial file behind and a no-op edit keeps the original inode and mtime.
func EditFile(
	fileName string,
	editor Editor,
) (changed bool, err error) {
	in, err := os.Open(fileName)
	if err != nil {
		return false, err
	}
	defer in.Close() // nolint:errcheck
	st, err := in.Stat()
	if err != nil {
		return false, err
	}
	d := filepath.Dir(fileName)
	out, err := os.CreateTemp(d, filepath.Base(fileName)+".tmp")
	if err != nil {
		return false, err
	}
	defer out.Close() // nolint:errcheck
	// keep a running checksum so we know if we can skip the final rename due to not
	// making any changes. This doesn't need to be a strong hash.
	hIn, hOut := crc32.NewIEEE(), crc32.NewIEEE()
	mr := io.TeeReader(in, hIn)
	mw := io.MultiWriter(hOut, out)
	if err := Edit(mr, mw, editor); err != nil {
		_ = out.Close()
		_ = os.Remove(out.Name())
		return false, err
	}
	// the scanner may stop before consuming trailing bytes, make sure the input
	// checksum covers the whole file
	if _, err := io.Copy(io.Discard, mr); err != nil {
		_ = out.Close()
		_ = os.Remove(out.Name())
		return false, err
	}
	if err := out.Chmod(st.Mode().Perm()); err != nil {
		_ = out.Close()
		_ = os.Remove(out.Name())
		return false, err
	}
	// protect user data: flush the new file to disk before we do the rename
	if err := out.Sync(); err != nil {
		_ = out.Close()
		_ = os.Remove(out.Name())
		return false, err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(out.Name())
		return false, err
	}
	if err := in.Close(); err != nil {
		return false, err
	}
	// if the checksums match, we didn't make any changes, so we can skip the
	// rename and avoid the mtime/etc update of the file.
	if hIn.Sum32() == hOut.Sum32() {
		return false, os.Remove(out.Name())
	}
	if err := os.Rename(out.Name(), fileName); err != nil {
		_ = os.Remove(out.Name())
		return false, err
	}
	return true, nil
}

// Edit streams in through editor to out, terminating every output element with
// a newline.
func Edit(
	in io.Reader,
	out io.Writer,
	editor Editor,
) error {
	scanner := newScanner(in)
	for scanner.Scan() {
		output, err := editor.Next(scanner.Text())
		if err != nil {
			return err
		}
		if err := writeLines(out, output); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	output, err := editor.EOF()
	if err != nil {
		return err
	}
	return writeLines(out, output)
}

func writeLines(out io.Writer, output iter.Seq[string]) error {
	for outLine := range output {
		if _, err := io.WriteString(out, outLine+"\n"); err != nil {
			return err
		}
	}
	return nil
}

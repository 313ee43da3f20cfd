package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"

	ferrors "github.com/matzehuels/framegram/pkg/errors"
	"github.com/matzehuels/framegram/pkg/observability"
)

// rename is swapped in tests to fail part way through a write.
var rename = os.Rename

// pending is an artifact written to a temporary file next to its target.
// backup holds the file the target replaced, if there was one; placed is
// set once the artifact sits at the target.
type pending struct {
	format string
	tmp    string
	target string
	backup string
	placed bool
	size   int
}

// Write stores every artifact at its path. All artifacts are first written
// to temporary files in the target directories; only when every write
// succeeded are they renamed into place, each existing target being moved
// aside first. On failure the files of this call are removed and the moved
// targets restored.
func Write(ctx context.Context, artifacts map[string][]byte, paths map[string]string) error {
	formats := make([]string, 0, len(artifacts))
	for f := range artifacts {
		formats = append(formats, f)
	}
	slices.Sort(formats)

	for _, f := range formats {
		path, ok := paths[f]
		if !ok {
			return ferrors.New(ferrors.ErrCodeInternal, "no output path for %s", f)
		}
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return ferrors.New(ferrors.ErrCodeIO, "output %s is a directory", path)
		}
	}

	var staged []pending
	cleanup := func() {
		for _, p := range staged {
			os.Remove(p.tmp)
		}
	}

	for _, f := range formats {
		if err := ctx.Err(); err != nil {
			cleanup()
			return err
		}
		p, err := stage(f, paths[f], artifacts[f])
		if err != nil {
			observability.Output().OnWrite(ctx, paths[f], 0, err)
			cleanup()
			return err
		}
		staged = append(staged, p)
	}

	rollback := func() {
		for _, p := range staged {
			switch {
			case p.backup != "":
				rename(p.backup, p.target)
			case p.placed:
				os.Remove(p.target)
			}
		}
		cleanup()
	}

	for i := range staged {
		p := &staged[i]
		if err := place(p); err != nil {
			err = ferrors.Wrap(ferrors.ErrCodeIO, err, "write %s", p.target)
			observability.Output().OnWrite(ctx, p.target, 0, err)
			rollback()
			return err
		}
	}

	for _, p := range staged {
		if p.backup != "" {
			os.Remove(p.backup)
		}
	}
	for _, p := range staged {
		observability.Output().OnWrite(ctx, p.target, p.size, nil)
	}
	return nil
}

// place moves p into its target, first moving an existing target aside.
func place(p *pending) error {
	if _, err := os.Lstat(p.target); err == nil {
		bak, err := os.CreateTemp(filepath.Dir(p.target), "."+filepath.Base(p.target)+".*.bak")
		if err != nil {
			return err
		}
		bak.Close()
		if err := rename(p.target, bak.Name()); err != nil {
			os.Remove(bak.Name())
			return err
		}
		p.backup = bak.Name()
	}
	if err := rename(p.tmp, p.target); err != nil {
		return err
	}
	p.placed = true
	return nil
}

func stage(format, target string, data []byte) (pending, error) {
	f, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return pending{}, ferrors.Wrap(ferrors.ErrCodeIO, err, "write %s", target)
	}
	_, werr := f.Write(data)
	merr := f.Chmod(0o644)
	cerr := f.Close()
	if err := errors.Join(werr, merr, cerr); err != nil {
		os.Remove(f.Name())
		return pending{}, ferrors.Wrap(ferrors.ErrCodeIO, err, "write %s", target)
	}
	return pending{format: format, tmp: f.Name(), target: target, size: len(data)}, nil
}

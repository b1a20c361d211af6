package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	zip "github.com/hidez8891/zip"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"sassval/archive"
	"sassval/css"
	"sassval/state"
)

// sheetRunner reads stylesheets from files, directories and zip archives and
// prints values of their declarations.
type sheetRunner struct {
	r     *css.Reader
	p     *printer
	log   *zap.Logger
	count int
}

// Sheet prints value of every declaration found in stylesheets.
func Sheet(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return errors.New("no stylesheets to read")
	}

	p, err := newPrinter(cmd.Root().Writer, outputFromFlags(cmd, env.Cfg.Output))
	if err != nil {
		return err
	}

	s := &sheetRunner{r: env.Reader(), p: p, log: env.Log}
	for _, src := range cmd.Args().Slice() {
		if er := s.process(ctx, src); er != nil {
			err = multierr.Append(err, er)
		}
	}
	if s.count == 0 && err == nil {
		env.Log.Warn("No stylesheets found", zap.Strings("sources", cmd.Args().Slice()))
	}
	return err
}

func (s *sheetRunner) process(ctx context.Context, src string) error {
	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}
	if fi.IsDir() {
		return s.processDir(ctx, src)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}

	isArchive, err := archive.IsArchive(src)
	if err != nil {
		return fmt.Errorf("unable to check archive type: %w", err)
	}
	if isArchive {
		return s.processArchive(ctx, src)
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read stylesheet: %w", err)
	}
	return s.processSheet(data, src)
}

// processDir walks directory tree looking for stylesheets and archives.
func (s *sheetRunner) processDir(ctx context.Context, dir string) (err error) {
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, er error) error {
		if er := ctx.Err(); er != nil {
			return er
		}
		if er != nil {
			s.log.Warn("Skipping path", zap.String("path", path), zap.Error(er))
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		isArchive, er := archive.IsArchive(path)
		if er != nil {
			s.log.Warn("Skipping file", zap.String("file", path), zap.Error(er))
			return nil
		}
		switch {
		case isArchive:
			er = s.processArchive(ctx, path)
		case archive.IsStylesheet(path):
			var data []byte
			if data, er = os.ReadFile(path); er == nil {
				er = s.processSheet(data, path)
			}
		default:
			s.log.Debug("Skipping file, not recognized as stylesheet or archive", zap.String("file", path))
		}
		err = multierr.Append(err, er)
		return nil
	})
	return multierr.Append(err, walkErr)
}

func (s *sheetRunner) processArchive(ctx context.Context, path string) (err error) {
	walkErr := archive.Walk(path, "", archive.IsStylesheet, func(name string, f *zip.File) error {
		if er := ctx.Err(); er != nil {
			return er
		}
		data, er := archive.ReadFile(f)
		if er == nil {
			er = s.processSheet(data, filepath.Join(name, f.Name))
		}
		err = multierr.Append(err, er)
		return nil
	})
	if walkErr != nil {
		err = multierr.Append(err, fmt.Errorf("unable to process archive (%s): %w", path, walkErr))
	}
	return err
}

func (s *sheetRunner) processSheet(data []byte, source string) error {
	s.count++
	decls, err := s.r.ReadSheet(data, source)
	for _, d := range decls {
		if d.Value == nil {
			continue
		}
		literal := fmt.Sprintf("%s: %s { %s }", source, strings.Join(d.Selectors, ", "), d.Property)
		if er := s.p.print(literal, d.Value); er != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", literal, er))
		}
	}
	return err
}

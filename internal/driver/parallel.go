package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// DirResult содержит результат обработки одного файла директории.
type DirResult struct {
	Path   string
	Result *Result
	Err    error // I/O или структурная ошибка этого файла
}

// ListPyFiles возвращает отсортированный список всех *.py файлов в
// директории, включая поддиректории.
func ListPyFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Скрытые директории (.git, .venv) не трогаем.
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, ".py") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// StripDir strips all *.py files under dir in parallel. Per-file failures
// are recorded in the corresponding DirResult and do not stop the run;
// only context cancellation aborts it. sink gets one event per file as it
// completes (pass NopSink for none).
func StripDir(ctx context.Context, dir string, opts Options, jobs int, sink EventSink) ([]DirResult, error) {
	files, err := ListPyFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]DirResult, len(files))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res, err := StripFile(path, opts)
			results[i] = DirResult{Path: path, Result: res, Err: err}

			ev := Event{
				Path:  path,
				Index: int(done.Add(1)),
				Total: len(files),
				Err:   err,
			}
			if res != nil {
				ev.Changed = res.Changed
			}
			sink.Send(ev)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

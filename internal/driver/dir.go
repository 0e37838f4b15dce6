package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"arialint/internal/diag"
	"arialint/internal/source"
	"arialint/internal/trace"
)

// ListFiles returns the files under dir selected by include and exclude,
// sorted. Patterns are doublestar globs matched against slash-separated
// paths relative to dir; an empty include selects every file.
func ListFiles(dir string, include, exclude []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if rel != "." && matchAny(exclude, rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if !selected(include, exclude, rel) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	slices.Sort(files)
	return files, nil
}

// Selects reports whether the file at path, somewhere below dir, passes the
// include and exclude globs the same way ListFiles applies them.
func Selects(dir, path string, include, exclude []string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return selected(include, exclude, filepath.ToSlash(rel))
}

func selected(include, exclude []string, rel string) bool {
	if matchAny(exclude, rel) {
		return false
	}
	return len(include) == 0 || matchAny(include, rel)
}

func matchAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// DiagnoseDir analyses every selected file under dir in parallel. Files
// that cannot be read get an IO9001 diagnostic instead of failing the run.
func DiagnoseDir(ctx context.Context, dir string, opts Options) (*DiagnoseResult, error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "diagnose_dir", trace.CurrentSpan(ctx).SpanID).
		WithExtra("dir", dir)
	defer span.End("")
	ctx = trace.WithSpanContext(ctx, trace.SpanContext{SpanID: span.ID()})

	listIdx := opts.begin("list_files")
	files, err := ListFiles(dir, opts.Include, opts.Exclude)
	opts.end(listIdx, "files="+strconv.Itoa(len(files)))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return &DiagnoseResult{FileSet: fileSet, Files: []FileResult{}}, nil
	}

	// Создаём FileSet и предзагружаем все файлы: дальше он только читается
	loadIdx := opts.begin("load_files")
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make(map[int]diag.Diagnostic)
	for i, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
		fileID, err := fileSet.Load(path)
		if err != nil {
			fileIDs[i], loadErrors[i] = ioFailure(fileSet, path, err)
			continue
		}
		fileIDs[i] = fileID
	}
	opts.end(loadIdx, "")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if d, failed := loadErrors[i]; failed {
				results[i] = FileResult{
					Path:        path,
					FileID:      fileIDs[i],
					Diagnostics: []diag.Diagnostic{d},
					Failed:      true,
				}
				emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Diagnostics: 1})
				return nil
			}

			results[i] = analyzeFile(gctx, fileSet.Get(fileIDs[i]), opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return &DiagnoseResult{FileSet: fileSet, Files: results}, err
	}
	span.WithExtra("files", strconv.Itoa(len(files)))
	return &DiagnoseResult{FileSet: fileSet, Files: results}, nil
}

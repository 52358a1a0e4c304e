package searcher

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/codefind/codefind-cli/internal/logging"
)

// Request describes one search run. Pattern is required; the CLI layer
// handles the empty-pattern usage branch before a Request is built.
type Request struct {
	Pattern     string
	FilePattern string
	Directory   string
	Recursive   bool
}

// Match is a single matching line. Line is 1-based. Text is trimmed for
// display; matching always runs against the raw line.
type Match struct {
	File string
	Line int
	Text string
}

const maxLineBytes = 4 * 1024 * 1024

type Searcher struct {
	excludes []string
}

func New(excludes []string) *Searcher {
	return &Searcher{excludes: append([]string{}, excludes...)}
}

// Run scans every file under req.Directory whose base name matches
// req.FilePattern and streams each matching line to r. It returns the total
// match count. Any failure aborts the whole run with a single wrapped error.
func (s *Searcher) Run(req Request, r Reporter) (int, error) {
	r.OnStart(req)
	re, err := regexp.Compile(req.Pattern)
	if err != nil {
		return 0, fmt.Errorf("invalid pattern %q: %w", req.Pattern, err)
	}
	files, err := s.enumerate(req)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, f := range files {
		n, err := s.scanFile(re, f, r)
		if err != nil {
			return count, fmt.Errorf("reading %s: %w", f, err)
		}
		count += n
	}
	r.OnDone(count)
	return count, nil
}

// matchAllPattern is the historical "*.*" filter. It matches every file
// name, extensionless ones included, not just names containing a dot.
const matchAllPattern = "*.*"

func matchesName(pattern, base string) (bool, error) {
	if pattern == matchAllPattern {
		return true, nil
	}
	return filepath.Match(pattern, base)
}

// enumerate lists candidate files. The default is the literal top-level
// composition directory/filePattern; Recursive walks subdirectories and
// matches the glob against each entry's base name.
func (s *Searcher) enumerate(req Request) ([]string, error) {
	if _, err := os.Stat(req.Directory); err != nil {
		return nil, fmt.Errorf("cannot access directory %s: %w", req.Directory, err)
	}
	if req.Recursive {
		return s.walk(req)
	}
	glob := req.FilePattern
	if glob == matchAllPattern {
		glob = "*"
	}
	candidates, err := filepath.Glob(filepath.Join(req.Directory, glob))
	if err != nil {
		return nil, fmt.Errorf("invalid file pattern %q: %w", req.FilePattern, err)
	}
	files := make([]string, 0, len(candidates))
	for _, c := range candidates {
		info, err := os.Stat(c)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if s.excluded(filepath.Base(c)) {
			continue
		}
		files = append(files, c)
	}
	return files, nil
}

func (s *Searcher) walk(req Request) ([]string, error) {
	var files []string
	err := filepath.WalkDir(req.Directory, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		base := filepath.Base(path)
		if d.IsDir() {
			if path != req.Directory && s.excluded(base) {
				return filepath.SkipDir
			}
			return nil
		}
		if s.excluded(base) {
			return nil
		}
		ok, err := matchesName(req.FilePattern, base)
		if err != nil {
			return fmt.Errorf("invalid file pattern %q: %w", req.FilePattern, err)
		}
		if ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (s *Searcher) excluded(base string) bool {
	for _, pat := range s.excludes {
		if ok, err := filepath.Match(pat, base); err == nil && ok {
			return true
		}
	}
	return false
}

func (s *Searcher) scanFile(re *regexp.Regexp, path string, r Reporter) (int, error) {
	logging.Debug("scanning: " + path)
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	line := 1
	sc := bufio.NewScanner(f)
	// Minified sources exceed the scanner's default 64KB token limit.
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		if re.Match(sc.Bytes()) {
			r.OnMatch(Match{File: path, Line: line, Text: strings.TrimSpace(sc.Text())})
			count++
		}
		line++
	}
	return count, sc.Err()
}

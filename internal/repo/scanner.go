package repo

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/ini.v1"
)

// readmeNames are the README filenames recognized at the repository root,
// checked in order.
var readmeNames = []string{"README.md", "README.markdown", "README.txt", "README"}

// Context holds everything collected from a repository in one scan. It is
// built once per invocation and not modified afterwards.
type Context struct {
	// Name is the repository name, parsed from the origin remote when
	// possible, otherwise the base name of the scanned directory.
	Name string
	// Owner is the remote owner (GitHub user or org). Empty when the remote
	// is absent or not recognized.
	Owner string
	// Readme is the exact on-disk contents of the README file.
	Readme string
	// ReadmePath is the path of the README file that was read.
	ReadmePath string
	// Tree lists slash-separated paths relative to the root, sorted.
	Tree []string
	// RemoteURL is the url of the origin remote, if .git/config has one.
	RemoteURL string
}

// Options controls folder tree enumeration.
type Options struct {
	// MaxDepth limits tree depth; 0 means unlimited.
	MaxDepth int
	// IgnoreDirs are directory names excluded from the tree at any level.
	// Defaults to [".git"] when empty.
	IgnoreDirs []string
}

// Scan reads a repository directory into a Context. It fails with
// PathNotFoundError when dir does not exist and MissingReadmeError when no
// README file is present at the root. Remote extraction never fails; a
// missing or unparsable .git/config just leaves RemoteURL empty.
func Scan(dir string, opts Options) (*Context, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &PathNotFoundError{Path: dir}
		}
		return nil, fmt.Errorf("stat repository path: %w", err)
	}
	if !info.IsDir() {
		return nil, &PathNotFoundError{Path: dir}
	}

	readmePath, readme, err := readReadme(dir)
	if err != nil {
		return nil, err
	}

	tree, err := walkTree(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("listing folder tree: %w", err)
	}

	c := &Context{
		Name:       filepath.Base(absPath(dir)),
		Readme:     readme,
		ReadmePath: readmePath,
		Tree:       tree,
	}

	if url := originURL(dir); url != "" {
		c.RemoteURL = url
		if owner, name, ok := parseGitHubURL(url); ok {
			c.Owner = owner
			c.Name = name
		}
	}

	return c, nil
}

func absPath(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	return abs
}

func readReadme(dir string) (string, string, error) {
	for _, name := range readmeNames {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err == nil {
			return path, string(data), nil
		}
		if !os.IsNotExist(err) {
			return "", "", fmt.Errorf("reading %s: %w", path, err)
		}
	}
	return "", "", &MissingReadmeError{Dir: dir}
}

func walkTree(dir string, opts Options) ([]string, error) {
	ignore := make(map[string]bool)
	if len(opts.IgnoreDirs) == 0 {
		opts.IgnoreDirs = []string{".git"}
	}
	for _, d := range opts.IgnoreDirs {
		ignore[d] = true
	}

	var tree []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == dir {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() && ignore[d.Name()] {
			return filepath.SkipDir
		}
		depth := strings.Count(rel, "/") + 1
		if opts.MaxDepth > 0 && depth > opts.MaxDepth {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		tree = append(tree, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(tree)
	return tree, nil
}

// TreeString renders the folder tree in the style of the tree tool, one
// entry per line with four spaces of indent per level.
func (c *Context) TreeString() string {
	var b strings.Builder
	b.WriteString(".")
	for _, rel := range c.Tree {
		depth := strings.Count(rel, "/")
		b.WriteString("\n")
		b.WriteString(strings.Repeat("    ", depth))
		b.WriteString("└── ")
		b.WriteString(filepath.Base(rel))
	}
	return b.String()
}

// originURL reads the url of the origin remote from .git/config.
// Best-effort: any failure yields an empty string.
func originURL(dir string) string {
	path := filepath.Join(dir, ".git", "config")
	cfg, err := ini.Load(path)
	if err != nil {
		return ""
	}
	sec, err := cfg.GetSection(`remote "origin"`)
	if err != nil {
		return ""
	}
	key, err := sec.GetKey("url")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(key.String())
}

// Matches HTTPS and SSH GitHub remote URLs.
var githubURLRe = regexp.MustCompile(`^(?:https://github\.com/|git@github\.com:)([^/]+)/([^/]+?)(?:\.git)?/?$`)

func parseGitHubURL(url string) (owner, name string, ok bool) {
	m := githubURLRe.FindStringSubmatch(url)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

package chain

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// AllowList is an immutable set of auction contract scripts.
type AllowList struct {
	scripts map[string]struct{}
}

// NewAllowList builds an AllowList, ignoring blank entries.
func NewAllowList(scripts ...string) *AllowList {
	set := make(map[string]struct{}, len(scripts))
	for _, script := range scripts {
		script = normalizeScript(script)
		if script == "" {
			continue
		}
		set[script] = struct{}{}
	}
	return &AllowList{scripts: set}
}

// ReadAllowListFile reads one script per line. Empty lines and lines starting with # are skipped.
func ReadAllowListFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open allow list %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	var scripts []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		scripts = append(scripts, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read allow list %s: %w", path, err)
	}
	return scripts, nil
}

// Contains reports whether script is a known auction contract.
func (l *AllowList) Contains(script string) bool {
	_, ok := l.scripts[normalizeScript(script)]
	return ok
}

// IsAuctionState reports whether a box guarded by script still belongs to the auction.
func (l *AllowList) IsAuctionState(script string) bool {
	return l.Contains(script)
}

// Len returns the number of known scripts.
func (l *AllowList) Len() int {
	return len(l.scripts)
}

func normalizeScript(script string) string {
	return strings.ToLower(strings.TrimSpace(script))
}

package global

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const (
	kb         = 1000
	maxLogSize = 250 * kb
	maxLogs    = 2
)

// rollingFileWriter appends to <prefix>.log in dir and rotates it into
// numbered archives once it grows past maxLogSize, keeping at most maxLogs
// archives around.
type rollingFileWriter struct {
	dir    string
	prefix string
}

func NewRollingFileWriter(dir string, prefix string) rollingFileWriter {
	// best effort; if the dir can't be made every write fails loudly enough
	_ = os.MkdirAll(dir, 0750)

	return rollingFileWriter{dir: dir, prefix: prefix}
}

func (w rollingFileWriter) Write(b []byte) (int, error) {
	mainPath := filepath.Join(w.dir, w.prefix+".log")

	mainLogFile, err := os.OpenFile(mainPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}
	defer mainLogFile.Close()

	stats, err := mainLogFile.Stat()
	if err != nil {
		return 0, err
	}

	// small enough, just append
	if stats.Size() < maxLogSize {
		return mainLogFile.Write(b)
	}

	mainLogFile.Close()

	if err := w.rotate(mainPath); err != nil {
		return 0, err
	}

	mainLogFile, err = os.OpenFile(mainPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}
	defer mainLogFile.Close()

	return mainLogFile.Write(b)
}

// rotate shifts every archive index up by one, drops archives past maxLogs
// and moves the live log to index 1.
func (w rollingFileWriter) rotate(mainPath string) error {
	archives, err := filepath.Glob(filepath.Join(w.dir, w.prefix+"-*.log"))
	if err != nil {
		return err
	}

	// highest index first so renames never collide
	sort.Slice(archives, func(i, j int) bool {
		return w.logIndex(archives[i]) > w.logIndex(archives[j])
	})

	for _, archive := range archives {
		index := w.logIndex(archive)
		if index <= 0 {
			// get rid of messed up log files
			if err := os.Remove(archive); err != nil {
				return err
			}
			continue
		}

		if index+1 > maxLogs {
			if err := os.Remove(archive); err != nil {
				return err
			}
			continue
		}

		newName := filepath.Join(w.dir, fmt.Sprintf("%s-%d.log", w.prefix, index+1))
		if err := os.Rename(archive, newName); err != nil {
			return err
		}
	}

	return os.Rename(mainPath, filepath.Join(w.dir, fmt.Sprintf("%s-1.log", w.prefix)))
}

func (w rollingFileWriter) logIndex(name string) int {
	base := filepath.Base(name)
	base, _ = strings.CutSuffix(base, ".log")
	indexStr, _ := strings.CutPrefix(base, w.prefix+"-")

	index, err := strconv.Atoi(indexStr)
	if err != nil {
		return -1
	}

	return index
}

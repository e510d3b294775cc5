package sanipath

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Rename describes one planned rename inside a scanned tree
type Rename struct {
	OldPath string
	NewPath string
	IsDir   bool
}

// RenamePlan is the result of scanning a tree for names the sanitizer would
// change. Planning never touches the filesystem; Apply performs the renames.
type RenamePlan struct {
	Root    string
	Renames []Rename
	Scanned int
}

// PlanRenames walks the tree under root and records every entry whose name
// the sanitizer would rewrite. The root itself is left alone. Directory
// entries carry their role hint from the walk, so "." and ".." handling and
// trailing-dot rules apply with full knowledge.
func PlanRenames(root string, policy PolicyConfig) (*RenamePlan, error) {
	plan := &RenamePlan{Root: root}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		plan.Scanned++
		if path == root {
			return nil
		}

		name := d.Name()
		sanitized, err := SanitizeNode(name, NodeOptions{
			IsFile:        HintFromBool(!d.IsDir()),
			IsRootOrDrive: HintNo,
			FATCompatible: policy.FATCompatible,
			TrimToLimit:   policy.TrimToLimit,
		})
		if err != nil {
			return fmt.Errorf("cannot sanitize %q: %w", path, err)
		}
		if sanitized == name {
			return nil
		}

		plan.Renames = append(plan.Renames, Rename{
			OldPath: path,
			NewPath: filepath.Join(filepath.Dir(path), sanitized),
			IsDir:   d.IsDir(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// Apply performs the planned renames, deepest entries first so that renaming
// a directory never invalidates the recorded paths of its children. Renames
// whose target already exists are skipped and logged rather than clobbering
// existing files. Returns the number of renames performed.
func (p *RenamePlan) Apply() (int, error) {
	renames := make([]Rename, len(p.Renames))
	copy(renames, p.Renames)
	sort.SliceStable(renames, func(i, j int) bool {
		return pathDepth(renames[i].OldPath) > pathDepth(renames[j].OldPath)
	})

	applied := 0
	for _, r := range renames {
		if _, err := os.Lstat(r.NewPath); err == nil {
			log.Warnf("Skipping %q: target %q already exists", r.OldPath, r.NewPath)
			continue
		}
		if err := os.Rename(r.OldPath, r.NewPath); err != nil {
			return applied, fmt.Errorf("failed to rename %q: %w", r.OldPath, err)
		}
		log.Debugf("Renamed %q -> %q", r.OldPath, r.NewPath)
		applied++
	}
	return applied, nil
}

func pathDepth(path string) int {
	return strings.Count(path, string(filepath.Separator))
}

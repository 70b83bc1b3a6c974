package foreground

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

// InstanceProbe finds other running scrobbler instances.
type InstanceProbe interface {
	Running(ctx context.Context) ([]int32, error)
}

// ProcessProbe scans the process table for "<binary> run" command lines.
type ProcessProbe struct {
	// Binary is the executable name to match, without extension.
	Binary string
	self   int32
}

// NewProcessProbe creates a probe that ignores the calling process.
func NewProcessProbe(binary string) *ProcessProbe {
	return &ProcessProbe{Binary: binary, self: int32(os.Getpid())}
}

// Running returns the PIDs of matching processes other than the caller.
// Processes whose command line cannot be read are skipped.
func (p *ProcessProbe) Running(ctx context.Context) ([]int32, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}
	var pids []int32
	for _, proc := range procs {
		if proc.Pid == p.self {
			continue
		}
		args, err := proc.CmdlineSliceWithContext(ctx)
		if err != nil {
			continue
		}
		if p.matches(args) {
			pids = append(pids, proc.Pid)
		}
	}
	return pids, nil
}

func (p *ProcessProbe) matches(args []string) bool {
	if len(args) < 2 || args[1] != "run" {
		return false
	}
	name := filepath.Base(args[0])
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return name == p.Binary
}

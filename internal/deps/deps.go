// Package deps reports availability of the external binaries livepair
// drives.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines one external dependency.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		command := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     command,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		switch {
		case command == "":
			status.Detail = "command not configured"
		default:
			if _, err := exec.LookPath(command); err != nil {
				status.Detail = fmt.Sprintf("binary %q not found", command)
			} else {
				status.Available = true
			}
		}
		results = append(results, status)
	}
	return results
}

// Package envcheck validates that the machine is ready to run the tracked
// programs. Each probe yields an explicit tri-state result: a probe that
// cannot be carried out reports Unknown and is assumed compatible, rather
// than being swallowed as a pass.
package envcheck

import (
	"fmt"
	"net/http"
	"os/exec"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"

	"github.com/fiscotools/integrador/internal/logging"
)

// Probe thresholds.
const (
	MinFreeDiskMB      = 500
	ConnectivityURL    = "https://www.gov.br/receitafederal"
	ConnectivityWindow = 5 * time.Second
)

// State classifies one probe outcome.
type State int

const (
	// Compatible means the probe ran and the requirement is met
	Compatible State = iota

	// Incompatible means the probe ran and the requirement is not met
	Incompatible

	// Unknown means the probe could not be carried out; callers assume
	// compatible but surface the uncertainty
	Unknown
)

// String returns the string representation of State
func (s State) String() string {
	switch s {
	case Compatible:
		return "Compatible"
	case Incompatible:
		return "Incompatible"
	case Unknown:
		return "Unknown"
	default:
		return "Invalid"
	}
}

// Result is one named probe outcome with a human-readable message.
type Result struct {
	Name    string
	State   State
	Message string
}

// Probe runs one environment check.
type Probe func() Result

// Validator runs the configured probe set.
type Validator struct {
	probes []Probe
	log    *logging.Logger
}

// NewValidator builds the default probe set: host identification, free
// disk space under baseDir, Java runtime presence, and internet
// reachability.
func NewValidator(baseDir string, log *logging.Logger) *Validator {
	return &Validator{
		probes: []Probe{
			CheckHost,
			func() Result { return CheckDiskSpace(baseDir, MinFreeDiskMB) },
			CheckJavaRuntime,
			func() Result { return CheckConnectivity(ConnectivityURL) },
		},
		log: log.WithComponent("envcheck"),
	}
}

// Validate runs every probe and returns the results sorted by name.
func (v *Validator) Validate() []Result {
	results := make([]Result, 0, len(v.probes))
	for _, probe := range v.probes {
		res := probe()
		v.log.Info().Str("probe", res.Name).Str("state", res.State.String()).
			Msg(res.Message)
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })
	return results
}

// Summary counts met requirements, treating Unknown as assumed-compatible.
func Summary(results []Result) (passed, total int) {
	for _, res := range results {
		if res.State != Incompatible {
			passed++
		}
	}
	return passed, len(results)
}

// Report renders the validation outcome as display text.
func (v *Validator) Report() string {
	results := v.Validate()
	passed, total := Summary(results)

	var b strings.Builder
	b.WriteString("Environment report\n")
	for _, res := range results {
		marker := "ok"
		switch res.State {
		case Incompatible:
			marker = "!!"
		case Unknown:
			marker = "??"
		}
		fmt.Fprintf(&b, "[%s] %s: %s\n", marker, res.Name, res.Message)
	}
	fmt.Fprintf(&b, "%d/%d requirements met\n", passed, total)
	return b.String()
}

// CheckHost identifies the operating system. Identification failure is
// Unknown, not a failure.
func CheckHost() Result {
	info, err := host.Info()
	if err != nil {
		return Result{Name: "Host", State: Unknown,
			Message: fmt.Sprintf("could not identify host: %v", err)}
	}
	return Result{Name: "Host", State: Compatible,
		Message: fmt.Sprintf("%s %s (%s)", info.Platform, info.PlatformVersion, runtime.GOARCH)}
}

// CheckDiskSpace verifies free space under path against a minimum in MB.
func CheckDiskSpace(path string, minMB uint64) Result {
	usage, err := disk.Usage(path)
	if err != nil {
		return Result{Name: "Disk", State: Unknown,
			Message: fmt.Sprintf("could not check disk space: %v", err)}
	}

	freeMB := usage.Free / (1 << 20)
	if freeMB >= minMB {
		return Result{Name: "Disk", State: Compatible,
			Message: fmt.Sprintf("%d MB free", freeMB)}
	}
	return Result{Name: "Disk", State: Incompatible,
		Message: fmt.Sprintf("%d MB free, %d MB required", freeMB, minMB)}
}

// CheckJavaRuntime looks for a Java runtime, required by the SPED
// programs.
func CheckJavaRuntime() Result {
	path, err := exec.LookPath("java")
	if err != nil {
		return Result{Name: "Java", State: Incompatible,
			Message: "Java runtime not found; required by SPED programs"}
	}
	return Result{Name: "Java", State: Compatible,
		Message: fmt.Sprintf("Java runtime at %s", path)}
}

// CheckConnectivity issues a bounded HEAD request to the download host.
func CheckConnectivity(url string) Result {
	client := &http.Client{Timeout: ConnectivityWindow}
	resp, err := client.Head(url)
	if err != nil {
		return Result{Name: "Internet", State: Incompatible,
			Message: fmt.Sprintf("no connectivity: %v", err)}
	}
	resp.Body.Close()
	return Result{Name: "Internet", State: Compatible,
		Message: fmt.Sprintf("reached %s (%s)", url, resp.Status)}
}

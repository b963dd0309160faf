// Package options defines typed flag structs for container engine commands.
//
// Each struct field carries a `flag` tag naming the command line flag it
// maps to. ToArgs turns a populated struct into an argv slice, so callers
// never assemble engine invocations by joining and splitting strings.
package options

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// CreateContainer are the flags for `<engine> create`.
type CreateContainer struct {
	Name string `flag:"--name"` // Assign a name to the container
	ProcessOptions
	ManagementOptions
}

// StartContainer are the flags for `<engine> start`.
type StartContainer struct {
	Attach      bool `flag:"--attach"`      // Attach STDOUT/STDERR and forward signals
	Interactive bool `flag:"--interactive"` // Attach container's STDIN
}

// StopContainer are the flags for `<engine> stop`.
type StopContainer struct {
	Signal string `flag:"--signal"` // Signal to send to the container
	Time   int    `flag:"--time"`   // Seconds to wait before killing the container
}

// DeleteContainer are the flags for `<engine> rm`.
type DeleteContainer struct {
	Force   bool `flag:"--force"`   // Force the removal of a running container
	Volumes bool `flag:"--volumes"` // Remove anonymous volumes associated with the container
}

// ExecContainer are the flags for `<engine> exec`.
type ExecContainer struct {
	ProcessOptions
}

// AttachContainer are the flags for `<engine> attach`.
type AttachContainer struct {
	DetachKeys string `flag:"--detach-keys"` // Override the key sequence for detaching a container
	NoStdin    bool   `flag:"--no-stdin"`    // Do not attach STDIN
}

// ListContainers are the flags for `<engine> container list`.
type ListContainers struct {
	All    bool   `flag:"--all"`    // Show all containers (default shows just running)
	Quiet  bool   `flag:"--quiet"`  // Only display container IDs
	Format string `flag:"--format"` // Format output using a custom template
}

// ProcessOptions control the process started in the container.
type ProcessOptions struct {
	TTY         bool              `flag:"-t"`        // Allocate a pseudo-TTY
	Interactive bool              `flag:"-i"`        // Keep STDIN open even if not attached
	Env         map[string]string `flag:"--env"`     // Set environment variables
	User        string            `flag:"--user"`    // Username or UID (format: <name|uid>[:<group|gid>])
	WorkDir     string            `flag:"--workdir"` // Working directory inside the container
}

// ManagementOptions control how the engine manages the container.
type ManagementOptions struct {
	Hostname string            `flag:"--hostname"` // Container host name
	Label    map[string]string `flag:"--label"`    // Set meta data on a container
	Volume   []string          `flag:"--volume"`   // Bind mount a volume
}

// ToArgs creates an array of strings that you can pass to exec.Command(...) as CLI args.
//
// s may be a struct or a pointer to one; a nil pointer yields nil. Zero
// valued fields are skipped unless the tag carries ",keepZero". Bools emit
// only the flag name. Maps emit one flag per key in sorted order, as
// key=value. Slices emit one flag per element. Embedded structs without a
// flag tag are flattened in place.
func ToArgs(s any) []string {
	v := reflect.ValueOf(s)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	return appendArgs(nil, v)
}

func appendArgs(ret []string, sv reflect.Value) []string {
	st := sv.Type()
	for i := range st.NumField() {
		field := st.Field(i)
		fv := sv.Field(i)
		flagTag, ok := field.Tag.Lookup("flag")
		if !ok {
			if field.Anonymous && field.Type.Kind() == reflect.Struct {
				ret = appendArgs(ret, fv)
			}
			continue
		}
		flagParts := strings.Split(flagTag, ",")
		flagName := flagParts[0]
		keepZero := len(flagParts) > 1 && strings.EqualFold(flagParts[1], "keepZero")
		if !keepZero && fv.IsZero() {
			continue
		}

		switch field.Type.Kind() {
		case reflect.Bool:
			if fv.Bool() {
				ret = append(ret, flagName)
			}
		case reflect.Map:
			m, ok := fv.Interface().(map[string]string)
			if !ok {
				continue
			}
			for _, k := range slices.Sorted(maps.Keys(m)) {
				ret = append(ret, flagName, fmt.Sprintf("%v=%v", k, m[k]))
			}
		case reflect.Slice:
			for j := range fv.Len() {
				ret = append(ret, flagName, fmt.Sprintf("%v", fv.Index(j).Interface()))
			}
		default:
			ret = append(ret, flagName, fmt.Sprintf("%v", fv.Interface()))
		}
	}
	return ret
}

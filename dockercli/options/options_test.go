package options

import (
	"reflect"
	"testing"
)

func TestToArgs(t *testing.T) {
	tests := map[string]struct {
		s        any
		expected []string
	}{
		"empty": {
			s:        ManagementOptions{},
			expected: nil,
		},
		"nil pointer": {
			s:        (*CreateContainer)(nil),
			expected: nil,
		},
		"not a struct": {
			s:        "create",
			expected: nil,
		},
		"hostname": {
			s: ManagementOptions{
				Hostname: "mybox",
			},
			expected: []string{
				"--hostname", "mybox",
			},
		},
		"create with tty": {
			s: CreateContainer{
				Name: "mybox",
				ProcessOptions: ProcessOptions{
					TTY:         true,
					Interactive: true,
				},
			},
			expected: []string{
				"--name", "mybox",
				"-t", // bools don't get a value, just include the flag name.
				"-i",
			},
		},
		"name with whitespace stays one element": {
			s: &CreateContainer{
				Name: "my box",
			},
			expected: []string{
				"--name", "my box",
			},
		},
		"stop": {
			s: StopContainer{
				Signal: "SIGKILL",
				Time:   3,
			},
			expected: []string{
				"--signal", "SIGKILL",
				"--time", "3",
			},
		},
		"env": {
			s: ExecContainer{
				ProcessOptions: ProcessOptions{
					Env: map[string]string{
						"a": "1",
						"b": "2",
						"d": "3",
						"c": "4",
					},
				},
			},
			expected: []string{
				"--env", "a=1",
				"--env", "b=2",
				"--env", "c=4",
				"--env", "d=3",
			},
		},
		"volumes": {
			s: CreateContainer{
				ManagementOptions: ManagementOptions{
					Volume: []string{
						"/home/me/src:/src",
						"/home/me/.ssh:/root/.ssh:ro",
					},
				},
			},
			expected: []string{
				"--volume", "/home/me/src:/src",
				"--volume", "/home/me/.ssh:/root/.ssh:ro",
			},
		},
		"list all": {
			s: &ListContainers{
				All: true,
			},
			expected: []string{
				"--all",
			},
		},
		"attach": {
			s: AttachContainer{
				DetachKeys: "ctrl-x,x",
			},
			expected: []string{
				"--detach-keys", "ctrl-x,x",
			},
		},
	}

	for testName, testCase := range tests {
		t.Run(testName, func(t *testing.T) {
			got := ToArgs(testCase.s)
			if !reflect.DeepEqual(got, testCase.expected) {
				t.Errorf("got %v, want %v", got, testCase.expected)
			}
		})
	}
}

func TestToArgs_KeepZero(t *testing.T) {
	type timeout struct {
		Time int `flag:"--time,keepZero"`
	}
	got := ToArgs(timeout{})
	want := []string{"--time", "0"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

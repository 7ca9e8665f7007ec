// SPDX-License-Identifier: MPL-2.0

package cargo

import (
	"reflect"
	"testing"
)

func TestActionString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		action Action
		want   string
	}{
		{ActionFmt, "fmt"},
		{ActionCheck, "check"},
		{ActionClippy, "clippy"},
		{Action(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := tt.action.String(); got != tt.want {
				t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.want)
			}
		})
	}
}

func TestActionArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		action Action
		mods   Modifiers
		want   []string
	}{
		{
			name:   "fmt without modifiers",
			action: ActionFmt,
			want:   []string{"fmt", "--"},
		},
		{
			name:   "fmt forwards rustfmt config pairs",
			action: ActionFmt,
			mods:   Modifiers{FmtConfig: "edition=2021,max_width=120"},
			want:   []string{"fmt", "--", "--config", "edition=2021,max_width=120"},
		},
		{
			name:   "check without modifiers",
			action: ActionCheck,
			want:   []string{"check"},
		},
		{
			name:   "check with a feature list",
			action: ActionCheck,
			mods:   Modifiers{Features: "foo,bar"},
			want:   []string{"check", "--features", "foo,bar"},
		},
		{
			name:   "all-features supersedes the feature list",
			action: ActionCheck,
			mods:   Modifiers{Features: "foo,bar", AllFeatures: true},
			want:   []string{"check", "--all-features"},
		},
		{
			name:   "clippy always denies warnings",
			action: ActionClippy,
			want:   []string{"clippy", "--", "-D", "warnings"},
		},
		{
			name:   "extra args are appended last",
			action: ActionCheck,
			mods:   Modifiers{Features: "foo", ExtraArgs: []string{"--offline", "--locked"}},
			want:   []string{"check", "--features", "foo", "--offline", "--locked"},
		},
		{
			name:   "extra args with embedded space stay one element",
			action: ActionFmt,
			mods:   Modifiers{ExtraArgs: []string{"--message-format", "short and sweet"}},
			want:   []string{"fmt", "--", "--message-format", "short and sweet"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.action.Args(tt.mods); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Args(%+v) = %v, want %v", tt.mods, got, tt.want)
			}
		})
	}
}

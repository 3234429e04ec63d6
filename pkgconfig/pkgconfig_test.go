package pkgconfig

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/serde/serde"
)

const packageConfigsJSON = `[
  {
    "url": "fuchsia-pkg://example.com/package",
    "default_channel": "stable",
    "flavor": "debug",
    "realms": [
      {"app_id": "1a2b3c4d", "channels": ["stable", "beta", "alpha"]},
      {"app_id": "2b3c4d5e", "channels": ["test"]}
    ]
  },
  {
    "url": "fuchsia-pkg://example.com/package2",
    "realms": [{"app_id": "3c4d5e6f", "channels": ["stable"]}]
  }
]`

func TestGenerateOmahaClientConfig(t *testing.T) {
	configs, err := LoadPackageConfigs(strings.NewReader(packageConfigsJSON))
	if err != nil {
		t.Fatal(err)
	}
	got, err := serde.ToMap(OmahaClientConfigType, *GenerateOmahaClientConfig(configs))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"packages": []any{
			map[string]any{
				"url":    "fuchsia-pkg://example.com/package",
				"flavor": "debug",
				"channel_config": map[string]any{
					"channels": []any{
						map[string]any{"name": "stable", "repo": "stable", "appid": "1a2b3c4d"},
						map[string]any{"name": "beta", "repo": "beta", "appid": "1a2b3c4d"},
						map[string]any{"name": "alpha", "repo": "alpha", "appid": "1a2b3c4d"},
						map[string]any{"name": "test", "repo": "test", "appid": "2b3c4d5e"},
					},
					"default_channel": "stable",
				},
			},
			map[string]any{
				"url": "fuchsia-pkg://example.com/package2",
				"channel_config": map[string]any{
					"channels": []any{
						map[string]any{"name": "stable", "repo": "stable", "appid": "3c4d5e6f"},
					},
				},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestGenerateOneRealm(t *testing.T) {
	configs := []PackageConfig{{
		URL:    "fuchsia-pkg://example.com/p",
		Realms: []Realm{{AppID: "a", Channels: []string{"s", "b"}}},
	}}
	got := GenerateOmahaClientConfig(configs)
	want := &OmahaClientConfig{Packages: []Package{{
		URL: "fuchsia-pkg://example.com/p",
		ChannelConfig: ChannelConfig{Channels: []Channel{
			{Name: "s", Repo: "s", AppID: "a"},
			{Name: "b", Repo: "b", AppID: "a"},
		}},
	}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestWrite(t *testing.T) {
	configs, err := LoadPackageConfigs(strings.NewReader(packageConfigsJSON))
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := GenerateOmahaClientConfig(configs[1:]).Write(buf, serde.Compact(true)); err != nil {
		t.Fatal(err)
	}
	want := `{"packages":[{"url":"fuchsia-pkg://example.com/package2","channel_config":{"channels":[{"name":"stable","repo":"stable","appid":"3c4d5e6f"}]}}]}` + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestWrongDefaultChannel(t *testing.T) {
	configs := []PackageConfig{{
		URL:            "fuchsia-pkg://example.com/package",
		DefaultChannel: ptr("wrong"),
		Realms:         []Realm{{AppID: "1a2b3c4d", Channels: []string{"stable", "beta", "alpha"}}},
	}}
	if err := configs[0].Validate(); !errors.Is(err, ErrDefaultChannel) {
		t.Errorf("expected %v, got %v", ErrDefaultChannel, err)
	}
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrDefaultChannel) {
			t.Errorf("unexpected panic value %v", r)
		}
	}()
	GenerateOmahaClientConfig(configs)
}

func TestLoadMissingURL(t *testing.T) {
	_, err := LoadPackageConfigs(strings.NewReader(`[{"realms": []}]`))
	var missing *serde.MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected missing field error, got %v", err)
	}
	if missing.Field != "url" {
		t.Errorf("expected url to be missing, got %q", missing.Field)
	}
}

func ptr[T any](v T) *T { return &v }

package main

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"
)

func TestNewMainFlags(t *testing.T) {
	newMainFlagsTests := []struct {
		osArgs  []string
		envVars map[string]string
		wantOk  bool
		want    mainFlags
	}{
		{
			wantOk: true,
			want:   mainFlags{cacheSec: defaultCacheSec},
		},
		{
			osArgs: []string{"", "-port=8001"},
			wantOk: true,
			want:   mainFlags{port: 8001, cacheSec: defaultCacheSec},
		},
		{
			osArgs: []string{"", "--port=8001"},
			wantOk: true,
			want:   mainFlags{port: 8001, cacheSec: defaultCacheSec},
		},
		{
			envVars: map[string]string{"PORT": "8002"},
			wantOk:  true,
			want:    mainFlags{port: 8002, cacheSec: defaultCacheSec},
		},
		{
			osArgs:  []string{"", "-port=8003"},
			envVars: map[string]string{"PORT": "8004"},
			wantOk:  true,
			want:    mainFlags{port: 8003, cacheSec: defaultCacheSec},
		},
		{
			envVars: map[string]string{"PORT": "eighty", "CACHE_SECONDS": "NaN"},
			wantOk:  true,
			want:    mainFlags{cacheSec: defaultCacheSec},
		},
		{
			envVars: map[string]string{"CACHE_SECONDS": "0"},
			wantOk:  true,
			want:    mainFlags{},
		},
		{
			osArgs: []string{"", "-port=8005", "-cache-sec=467"},
			wantOk: true,
			want:   mainFlags{port: 8005, cacheSec: 467},
		},
		{
			osArgs: []string{"", "-port=eighty"},
		},
		{
			osArgs: []string{"", "-words-file=words.txt"},
		},
	}
	for i, test := range newMainFlagsTests {
		osLookupEnvFunc := func(key string) (string, bool) {
			v, ok := test.envVars[key]
			return v, ok
		}
		var buf bytes.Buffer
		got, err := newMainFlags(test.osArgs, osLookupEnvFunc, &buf)
		switch {
		case !test.wantOk:
			if err == nil {
				t.Errorf("Test %v: wanted error", i)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		case test.want != *got:
			t.Errorf("Test %v:\nwanted: %+v\ngot:    %+v", i, test.want, *got)
		}
	}
}

func TestUsage(t *testing.T) {
	var buf bytes.Buffer
	osLookupEnvFunc := func(string) (string, bool) {
		return "", false
	}
	_, err := newMainFlags([]string{"cathedral", "-h"}, osLookupEnvFunc, &buf)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("wanted help error, got %v", err)
	}
	got := buf.String()
	for _, want := range []string{"PORT", "CACHE_SECONDS", "-port", "-cache-sec"} {
		if !strings.Contains(got, want) {
			t.Errorf("wanted usage to contain %q, got:\n%v", want, got)
		}
	}
}

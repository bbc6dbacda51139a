package content

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	var (
		tests = []string{
			``,
			`
		+++
		x = 2
		+++`,
			` ++++++ `,
			`  +++
		 x = "+++"
		 +++
		 hello`,
			`---
title: Hello
---
Body
---
More`,
			`Heading
---
Body`,
		}
		expect = [][]string{
			{``, ``},
			{`x = 2`, ``},
			{``, `++++++`},
			{`x = "+++"`, `hello`},
			{`title: Hello`, "Body\n---\nMore"},
			{``, "Heading\n---\nBody"},
		}
		formats = []Format{None, TOML, None, TOML, YAML, None}
	)
	for i := range tests {
		format, fm, r := Extract([]byte(tests[i]))
		fm = bytes.TrimSpace(fm)
		r = bytes.TrimSpace(r)
		require.Equal(t, expect[i], []string{string(fm), string(r)}, "case %d", i)
		require.Equal(t, formats[i], format, "case %d", i)
	}
}

func TestParseTOML(t *testing.T) {
	fm, body, err := Parse([]byte(`+++
title = "Hello"
date = 2021-03-04T05:06:07Z
kind = "article"
tags = ["go", "blog"]
expires = "1h"
+++
# Heading`))
	require.NoError(t, err)
	require.Equal(t, "Hello", fm.Title)
	require.True(t, time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC).Equal(fm.Created()), "got %s", fm.Created())
	require.Equal(t, "article", fm.Kind)
	require.Equal(t, []string{"go", "blog"}, fm.Tags)
	require.Equal(t, time.Hour, time.Duration(fm.Expires))
	require.Equal(t, "# Heading", string(body))
}

func TestParseYAML(t *testing.T) {
	fm, body, err := Parse([]byte(`---
title: "Rails tips"
kind: article
created_at: 2013-05-02 10:00:00 -0700
tags: [ruby, rails]
redirect: /elsewhere.html
---
Some *text*.`))
	require.NoError(t, err)
	require.Equal(t, "Rails tips", fm.Title)
	require.True(t, fm.Date.IsZero())
	want := time.Date(2013, 5, 2, 17, 0, 0, 0, time.UTC)
	require.True(t, want.Equal(fm.Created()), "got %s", fm.Created())
	require.Equal(t, []string{"ruby", "rails"}, fm.Tags)
	require.Equal(t, "/elsewhere.html", fm.Redirect)
	require.Equal(t, "Some *text*.", string(body))
}

func TestParseYAMLDateOnly(t *testing.T) {
	fm, _, err := Parse([]byte("---\ndate: 2020-01-01\nexpires: 30m\n---\n"))
	require.NoError(t, err)
	require.True(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC).Equal(fm.Created()), "got %s", fm.Created())
	require.Equal(t, 30*time.Minute, time.Duration(fm.Expires))
}

func TestParseNoFrontMatter(t *testing.T) {
	fm, body, err := Parse([]byte("just text"))
	require.NoError(t, err)
	require.Equal(t, FrontMatter{}, fm)
	require.Equal(t, "just text", string(body))
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"+++\ntitle = \n+++\nbody",
		"---\ndate: yesterday\n---\nbody",
		"---\nexpires: forever\n---\nbody",
	} {
		_, _, err := Parse([]byte(in))
		require.Error(t, err, in)
	}
}

func TestCreatedPrefersDate(t *testing.T) {
	d := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	c := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, d, FrontMatter{Date: d, CreatedAt: c}.Created())
	require.Equal(t, c, FrontMatter{CreatedAt: c}.Created())
}

package rest

import (
	"os"
	"strings"
	"testing"

	"github.com/andaru/pear/pearerr"
	"github.com/andaru/pear/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		want  Kind
	}{
		{"package listing namespace", `<a xmlns="http://pear.php.net/dtd/rest.allpackages"><p>x</p></a>`, KindPackageListing},
		{"package info namespace", `<p xmlns="http://pear.php.net/dtd/rest.package"/>`, KindPackageInfo},
		{"release listing namespace", `<a xmlns="http://pear.php.net/dtd/rest.allreleases"><c>x</c></a>`, KindReleaseListing},
		{"release namespace", `<r xmlns="http://pear.php.net/dtd/rest.release"/>`, KindRelease},
		{"package listing by name", `<?xml version="1.0"?><a> <!-- x --> <c>pecl.php.net</c></a>`, KindPackageListing},
		{"release listing by name", `<a><p>protobuf</p><c>pecl.php.net</c></a>`, KindReleaseListing},
		{"package info by name", `<P><n>protobuf</n></P>`, KindPackageInfo},
		{"release by name", `<r/>`, KindRelease},
		{"empty listing", `<a/>`, KindUnknown},
		{"listing of something else", `<a><q/></a>`, KindUnknown},
		{"other namespace", `<a xmlns="urn:other"><c>x</c></a>`, KindPackageListing},
		{"unknown root", `<rss/>`, KindUnknown},
	} {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := tree.Parse(strings.NewReader(tc.input))
			require.NoError(t, err)
			assert.New(t).Equal(tc.want, Detect(doc))
		})
	}
}

func TestDetectFixtures(t *testing.T) {
	for file, want := range map[string]Kind{
		"testdata/packages.xml":    KindPackageListing,
		"testdata/info.xml":        KindPackageInfo,
		"testdata/allreleases.xml": KindReleaseListing,
		"testdata/4.27.0.xml":      KindRelease,
	} {
		t.Run(file, func(t *testing.T) {
			f, err := os.Open(file)
			require.NoError(t, err)
			defer f.Close()
			doc, err := tree.Parse(f)
			require.NoError(t, err)
			assert.New(t).Equal(want, Detect(doc))
		})
	}
}

func TestDetectWithoutXMLQuery(t *testing.T) {
	doc := fakeNode{typ: tree.DocumentNode, children: []tree.Node{
		element("a", text("\n"), element("p", text("protobuf"))),
	}}
	assert.New(t).Equal(KindReleaseListing, Detect(doc))
}

func TestKind(t *testing.T) {
	check := assert.New(t)
	for _, k := range []Kind{KindPackageListing, KindPackageInfo, KindReleaseListing, KindRelease} {
		got, err := ParseKind(k.String())
		check.NoError(err)
		check.Equal(k, got)
		check.NotEmpty(k.Root())
	}

	for _, s := range []string{"", "auto", "AUTO"} {
		got, err := ParseKind(s)
		check.NoError(err)
		check.Equal(KindUnknown, got)
	}

	got, err := ParseKind("Releases")
	check.NoError(err)
	check.Equal(KindReleaseListing, got)

	_, err = ParseKind("channel")
	check.EqualError(err, `unknown document kind "channel"`)
	check.Equal("unknown", Kind(42).String())
	check.Equal("", KindUnknown.Root())
}

func TestRead(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		kind  Kind

		want    interface{}
		wantErr *pearerr.Error
	}{
		{
			name:  "detected package listing",
			input: `<a xmlns="http://pear.php.net/dtd/rest.allpackages"><c>pecl.php.net</c><p>apcu</p></a>`,
			want:  PackageListing{Category: "pecl.php.net", Items: []string{"apcu"}},
		},
		{
			name:  "detected release listing",
			input: `<a><p>protobuf</p><c>pecl.php.net</c><r><v>4.27.0</v><s>stable</s></r></a>`,
			want: ReleaseListing{
				Package: "protobuf",
				Channel: "pecl.php.net",
				Items:   []ShortRelease{{Version: "4.27.0", Stability: "stable"}},
			},
		},
		{
			name:    "forced kind",
			input:   `<a><p>protobuf</p><c>pecl.php.net</c></a>`,
			kind:    KindPackageListing,
			wantErr: pearerr.MissingElement(FieldCategory, pearerr.WithIndex(0)),
		},
		{
			name:    "forced kind with other root",
			input:   `<a><c>pecl.php.net</c></a>`,
			kind:    KindRelease,
			wantErr: pearerr.MissingRoot(RootRelease),
		},
		{
			name:    "unknown document",
			input:   `<rss version="2.0"/>`,
			wantErr: pearerr.UnknownDocument(),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			got, err := Read(strings.NewReader(tc.input), tc.kind)
			if tc.wantErr != nil {
				check.ErrorIs(err, tc.wantErr)
				check.Nil(got)
				return
			}
			check.NoError(err)
			check.Equal(tc.want, got)
		})
	}
}

func TestReadFixtures(t *testing.T) {
	for _, file := range []string{
		"testdata/packages.xml",
		"testdata/info.xml",
		"testdata/allreleases.xml",
		"testdata/4.27.0.xml",
	} {
		t.Run(file, func(t *testing.T) {
			f, err := os.Open(file)
			require.NoError(t, err)
			defer f.Close()
			got, err := Read(f, KindUnknown)
			require.NoError(t, err)
			assert.New(t).NotNil(got)
		})
	}
}

func TestReadParseError(t *testing.T) {
	check := assert.New(t)
	_, err := Read(strings.NewReader(`<a><c>pecl.php.net</a>`), KindUnknown)
	check.Error(err)
	check.NotErrorIs(err, pearerr.UnknownDocument())

	_, err = ReadPackageInfo(strings.NewReader(``))
	check.Error(err)
}

func TestReadRoot(t *testing.T) {
	check := assert.New(t)

	_, err := ReadPackageListing(strings.NewReader(`<p><n>protobuf</n></p>`))
	check.ErrorIs(err, pearerr.MissingRoot(RootPackageListing))

	_, err = ReadRelease(strings.NewReader(`<o:r xmlns:o="http://pear.php.net/dtd/rest.release"/>`))
	check.ErrorIs(err, pearerr.MissingRoot(RootRelease))

	doc := fakeNode{typ: tree.DocumentNode, children: []tree.Node{element("r"), element("r")}}
	_, err = Decode(doc, KindRelease)
	check.ErrorIs(err, pearerr.DuplicateRoot(RootRelease))
}

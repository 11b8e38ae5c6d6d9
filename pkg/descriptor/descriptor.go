// Package descriptor extracts declared project names from build-tool
// descriptor files (Maven pom.xml, Ant build.xml).
//
// Extraction is strictly best-effort: a missing file, an unreadable
// stream or malformed XML all yield an empty name, never an error. A
// malformed descriptor somewhere in a workspace must not be able to
// abort a scan.
package descriptor

import (
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"

	"github.com/modscan/modscan/pkg/logging"
	"github.com/modscan/modscan/pkg/paths"
)

// Descriptor filenames
const (
	// MavenPom is the filename of a Maven project descriptor
	MavenPom = "pom.xml"
	// AntProject is the filename of an Ant project descriptor
	AntProject = "build.xml"
)

// targetDir is the Maven build-output directory convention. A file under
// target/ is attributed to the module whose pom.xml sits next to target/.
const targetDir = "/target"

// Kind identifies the build tool a descriptor belongs to
type Kind int

// Descriptor kinds
const (
	KindMaven Kind = iota
	KindAnt
)

// String returns the descriptor kind name
func (k Kind) String() string {
	switch k {
	case KindMaven:
		return "maven"
	case KindAnt:
		return "ant"
	default:
		return "unknown"
	}
}

// Filename returns the descriptor filename for the kind
func (k Kind) Filename() string {
	if k == KindAnt {
		return AntProject
	}
	return MavenPom
}

// Opener opens a byte stream for an absolute path. It exists so tests
// and alternative file sources can be substituted for the real
// filesystem.
type Opener interface {
	Open(path string) (io.ReadCloser, error)
}

// OSOpener is the default Opener reading from the local filesystem
type OSOpener struct{}

// Open implements Opener
func (OSOpener) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Parser extracts project names from descriptor files
type Parser struct {
	opener Opener
	logger zerolog.Logger
}

// NewParser creates a Parser reading from the local filesystem
func NewParser() *Parser {
	return NewParserWithOpener(OSOpener{})
}

// NewParserWithOpener creates a Parser with a custom stream opener
func NewParserWithOpener(opener Opener) *Parser {
	return &Parser{
		opener: opener,
		logger: logging.GetLogger("descriptor"),
	}
}

// MavenName returns the project name declared in a pom.xml, or "".
//
// The path may either point at the pom itself, or at any file under a
// module's target/ directory, in which case everything from "/target"
// on is stripped and the sibling pom.xml is read instead.
func (p *Parser) MavenName(path string) string {
	var pomPath string
	switch {
	case strings.HasSuffix(path, MavenPom):
		pomPath = path
	case strings.Contains(path, targetDir):
		pomPath = paths.BeforeLast(path, targetDir) + "/" + MavenPom
	default:
		return ""
	}

	doc, err := p.read(pomPath)
	if err != nil {
		p.logger.Debug().Err(err).Str("path", pomPath).Msg("No usable pom.xml")
		return ""
	}

	if name := doc.FindElement("/project/name"); name != nil {
		return name.Text()
	}
	return ""
}

// AntName returns the project name declared in dir/build.xml, or "".
// The name is taken from the name attribute of the root project element.
func (p *Parser) AntName(dir string) string {
	var path string
	if paths.IsBlank(dir) {
		path = AntProject
	} else {
		path = dir + "/" + AntProject
	}

	doc, err := p.read(path)
	if err != nil {
		p.logger.Debug().Err(err).Str("path", path).Msg("No usable build.xml")
		return ""
	}

	if root := doc.Root(); root != nil && root.Tag == "project" {
		return root.SelectAttrValue("name", "")
	}
	return ""
}

// read opens and parses a descriptor as XML
func (p *Parser) read(path string) (*etree.Document, error) {
	stream, err := p.opener.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = stream.Close() }()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(stream); err != nil {
		return nil, err
	}
	return doc, nil
}

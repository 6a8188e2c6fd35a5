package mwmfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/tilenav/pkg/util"
)

// Tile archive section tags.
const (
	HEADER_FILE_TAG    = "header"
	ROUTING_FILE_TAG   = "routing"
	CROSS_MWM_FILE_TAG = "cross_mwm"
)

const containerMagic = "TILENAV1"

// Writer stages tag-addressed sections for one tile archive. Sections
// accumulate in memory and reach the file only on Commit, so a failed
// build leaves the archive untouched.
type Writer struct {
	path     string
	sections []*SectionWriter
}

func NewWriter(path string) *Writer {
	return &Writer{path: path, sections: make([]*SectionWriter, 0, 2)}
}

// SectionWriter writes one section's payload, bzip2-compressed. Pos
// observes the number of uncompressed bytes written so far.
type SectionWriter struct {
	tag string
	buf *bytes.Buffer
	bz  *bzip2.Writer
	pos int64
	err error
}

func (w *Writer) GetWriter(tag string) (*SectionWriter, error) {
	buf := &bytes.Buffer{}
	bz, err := bzip2.NewWriter(buf, &bzip2.WriterConfig{})
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrIOFailure, "section %q writer", tag)
	}
	sw := &SectionWriter{tag: tag, buf: buf, bz: bz}
	w.sections = append(w.sections, sw)
	return sw, nil
}

func (sw *SectionWriter) Write(p []byte) (int, error) {
	n, err := sw.bz.Write(p)
	sw.pos += int64(n)
	if err != nil {
		sw.err = err
	}
	return n, err
}

func (sw *SectionWriter) Pos() int64 {
	return sw.pos
}

func (sw *SectionWriter) close() error {
	if err := sw.bz.Close(); err != nil {
		return err
	}
	return sw.err
}

// Commit finalises every staged section and appends them to the archive.
// A fresh archive gets the container magic first.
func (w *Writer) Commit() error {
	for _, sw := range w.sections {
		if err := sw.close(); err != nil {
			return util.WrapErrorf(err, util.ErrIOFailure, "section %q close", sw.tag)
		}
	}

	_, statErr := os.Stat(w.path)
	isNew := os.IsNotExist(statErr)

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return util.WrapErrorf(err, util.ErrIOFailure, "open archive %q", w.path)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if isNew {
		fmt.Fprintf(bw, "%s\n", containerMagic)
	}
	for _, sw := range w.sections {
		payload := sw.buf.Bytes()
		fmt.Fprintf(bw, "%s %d\n", sw.tag, len(payload))
		if _, err := bw.Write(payload); err != nil {
			return util.WrapErrorf(err, util.ErrIOFailure, "write section %q", sw.tag)
		}
		fmt.Fprintf(bw, "\n")
	}
	return bw.Flush()
}

type sectionInfo struct {
	payload []byte
}

// Reader opens a tile archive and resolves tags to section payloads. A
// tag written twice resolves to its latest occurrence.
type Reader struct {
	sections map[string]sectionInfo
}

func OpenReader(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrIOFailure, "open archive %q", path)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	magic, err := util.ReadLine(br)
	if err != nil || magic != containerMagic {
		return nil, util.WrapErrorf(err, util.ErrBadFormat, "archive magic of %q", path)
	}

	r := &Reader{sections: make(map[string]sectionInfo)}
	for {
		header, err := util.ReadLine(br)
		if err == io.EOF || header == "" {
			break
		}
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadFormat, "section header of %q", path)
		}
		fields := strings.Fields(header)
		if len(fields) != 2 {
			return nil, util.WrapErrorf(nil, util.ErrBadFormat, "section header %q", header)
		}
		size, err := strconv.Atoi(fields[1])
		if err != nil || size < 0 {
			return nil, util.WrapErrorf(err, util.ErrBadFormat, "section size %q", header)
		}

		payload := make([]byte, size)
		if _, err := io.ReadFull(br, payload); err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadFormat, "section payload %q", fields[0])
		}
		r.sections[fields[0]] = sectionInfo{payload: payload}

		// trailing newline after the payload
		if _, err := br.ReadByte(); err != nil && err != io.EOF {
			return nil, util.WrapErrorf(err, util.ErrBadFormat, "section terminator %q", fields[0])
		}
	}
	return r, nil
}

func (r *Reader) HasSection(tag string) bool {
	_, ok := r.sections[tag]
	return ok
}

// GetReader decompresses the section payload for the tag.
func (r *Reader) GetReader(tag string) (io.Reader, error) {
	info, ok := r.sections[tag]
	if !ok {
		return nil, util.WrapErrorf(nil, util.ErrNotFound, "section %q", tag)
	}
	bz, err := bzip2.NewReader(bytes.NewReader(info.payload), nil)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadFormat, "section %q payload", tag)
	}
	return bz, nil
}

// WriteHeader stages the tile header section carrying the coding params.
func WriteHeader(w *Writer, params CodingParams) error {
	sw, err := w.GetWriter(HEADER_FILE_TAG)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(sw, "%d\n", params.GetCoordBits())
	return err
}

// LoadCodingParams reads the coding params from an archive's header
// section; archives without one get the defaults.
func LoadCodingParams(path string) (CodingParams, error) {
	r, err := OpenReader(path)
	if err != nil {
		return CodingParams{}, err
	}
	if !r.HasSection(HEADER_FILE_TAG) {
		return DefaultCodingParams(), nil
	}
	sr, err := r.GetReader(HEADER_FILE_TAG)
	if err != nil {
		return CodingParams{}, err
	}
	br := bufio.NewReader(sr)
	line, err := util.ReadLine(br)
	if err != nil {
		return CodingParams{}, util.WrapErrorf(err, util.ErrBadFormat, "header section")
	}
	bits, err := strconv.ParseUint(strings.TrimSpace(line), 10, 8)
	if err != nil {
		return CodingParams{}, util.WrapErrorf(err, util.ErrBadFormat, "header coord bits %q", line)
	}
	return NewCodingParams(uint8(bits)), nil
}

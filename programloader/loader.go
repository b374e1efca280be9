// This file is part of GopherAVR.
//
// GopherAVR is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAVR is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAVR.  If not, see <https://www.gnu.org/licenses/>.

package programloader

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopheravr/ihex"
)

// List of valid formats.
const (
	FormatAuto = "AUTO"
	FormatHex  = "HEX"
	FormatBin  = "BIN"
)

// FileExtensions is the list of file extensions that are recognised by the
// programloader package.
var FileExtensions = [...]string{".HEX", ".IHEX", ".IHX", ".BIN"}

// Loader is used to specify the program to attach to the AVR.
type Loader struct {
	// filename of the program to load
	Filename string

	// one of the Format values. FormatAuto indicates that the format should
	// be decided when the data is loaded
	Format string

	// expected hash of the loaded file. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the file data
	Data []byte

	// the program words and the start address recorded in the file. only
	// valid after a successful call to Load()
	Words []uint16
	Start uint32
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The format argument will be used to set the Format field, unless the
// argument is either "AUTO" or the empty string. In which case the file
// extension is used to set the field.
func NewLoader(filename string, format string) Loader {
	ld := Loader{
		Filename: filename,
		Format:   FormatAuto,
	}

	format = strings.TrimSpace(strings.ToUpper(format))
	if format != FormatAuto && format != "" {
		ld.Format = format
		return ld
	}

	switch strings.ToUpper(path.Ext(filename)) {
	case ".HEX", ".IHEX", ".IHX":
		ld.Format = FormatHex
	case ".BIN":
		ld.Format = FormatBin
	}

	return ld
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	s := path.Base(ld.Filename)
	return strings.TrimSuffix(s, path.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

func (ld *Loader) read() error {
	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%s", resp.Status)
		}

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

	case "file", "":
		ld.Data, err = os.ReadFile(ld.Filename)
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("unsupported URL scheme (%s)", scheme)
	}

	return nil
}

// Load the program data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (ld *Loader) Load() error {
	if !ld.HasLoaded() {
		if err := ld.read(); err != nil {
			return fmt.Errorf("programloader: %w", err)
		}
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		return fmt.Errorf("programloader: unexpected hash value")
	}
	ld.Hash = hash

	format := ld.Format
	if format == FormatAuto {
		format = FormatBin
		if bytes.HasPrefix(bytes.TrimSpace(ld.Data), []byte(":")) {
			format = FormatHex
		}
	}

	switch format {
	case FormatHex:
		img, err := ihex.Read(bytes.NewReader(ld.Data))
		if err != nil {
			return fmt.Errorf("programloader: %w", err)
		}
		ld.Words = img.Words()
		ld.Start = img.Start
	case FormatBin:
		img := ihex.Image{Bytes: ld.Data}
		ld.Words = img.Words()
		ld.Start = 0
	default:
		return fmt.Errorf("programloader: unsupported format (%s)", ld.Format)
	}

	return nil
}

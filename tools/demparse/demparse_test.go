// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package demparse

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/danjacques/godem/protocol"
	"github.com/danjacques/godem/protocol/protocoltest"
	"github.com/danjacques/godem/replay/export"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = ioutil.TempDir("", "demparse_test")
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	writeConfig := func(content string) string {
		path := filepath.Join(dir, "demparse.yaml")
		Expect(ioutil.WriteFile(path, []byte(content), 0644)).To(Succeed())
		return path
	}

	It("loads a file and applies defaults", func() {
		cfg, err := LoadFile(writeConfig("export: /tmp/out\nverbose: true\n"))
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg).To(Equal(&Config{
			Export:         "/tmp/out",
			Verbose:        true,
			Specialization: Lenient,
			MaxBufferSize:  4 * 1024 * 1024,
			MaxFailures:    10,
		}))
	})

	It("rejects an unknown specialization policy", func() {
		_, err := LoadFile(writeConfig("specialization: sometimes\n"))
		Expect(err).To(MatchError(ContainSubstring("sometimes")))
	})

	It("rejects a file that is not YAML", func() {
		_, err := LoadFile(writeConfig("export: [unterminated\n"))
		Expect(err).To(HaveOccurred())
	})

	It("parses a StrictnessFlag", func() {
		var sf StrictnessFlag
		Expect(sf.Set("STRICT")).To(Succeed())
		Expect(sf.Value()).To(Equal(Strict))
		Expect(sf.Set("never")).ToNot(Succeed())
		Expect(sf.Value()).To(Equal(Strict))
	})
})

var _ = Describe("Run", func() {
	var (
		dir            string
		capturePath    string
		stdout, stderr bytes.Buffer
	)

	BeforeEach(func() {
		var err error
		dir, err = ioutil.TempDir("", "demparse_test")
		Expect(err).ToNot(HaveOccurred())
		stdout.Reset()
		stderr.Reset()

		capturePath = filepath.Join(dir, "match.dem")
		embedded := protocoltest.Embedded(protocoltest.Record{
			Kind: protocol.EmbeddedCreateStringTable,
			Payload: protocoltest.CreateStringTable("userinfo", 64, protocoltest.NewEntries(64).
				Add(0, "0", protocoltest.UserInfo(1, "alpha", 2)).
				Add(1, "1", []byte("bad"))),
		})
		Expect(ioutil.WriteFile(capturePath, protocoltest.NewCapture(0).
			Frame(protocol.KindFileHeader, 0, protocoltest.FileHeader("PBUFDEM", "dota", 40)).
			Frame(protocol.KindSignonPacket, 0, protocoltest.Packet(embedded)).
			Frame(protocol.KindSyncTick, 0, protocoltest.Empty()).
			Frame(protocol.KindStop, 10, protocoltest.Empty()).
			Bytes(), 0644)).To(Succeed())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	It("prints a summary", func() {
		Expect(Run([]string{capturePath}, &stdout, &stderr)).To(Equal(0))

		out := stdout.String()
		Expect(out).To(ContainSubstring("dota"))
		Expect(out).To(MatchRegexp(`Match\s+1`))
		Expect(out).To(MatchRegexp(`0\s+userinfo\s+2\s+1`))
		Expect(out).To(MatchRegexp(`Specialization failures:\s+1`))
	})

	It("fails in strict mode", func() {
		Expect(Run([]string{"--strict", capturePath}, &stdout, &stderr)).To(Equal(1))
	})

	Context("with a strict config file", func() {
		var configPath string

		BeforeEach(func() {
			configPath = filepath.Join(dir, "demparse.yaml")
			Expect(ioutil.WriteFile(configPath, []byte("specialization: strict\n"), 0644)).To(Succeed())
		})

		It("fails using the file's policy", func() {
			Expect(Run([]string{"--config", configPath, capturePath}, &stdout, &stderr)).To(Equal(1))
		})

		It("lets --strict=false restore the lenient policy", func() {
			Expect(Run([]string{"--config", configPath, "--strict=false", capturePath}, &stdout, &stderr)).To(Equal(0))
			Expect(stdout.String()).To(MatchRegexp(`Specialization failures:\s+1`))
		})
	})

	It("exports the capture", func() {
		dest := filepath.Join(dir, "export")
		Expect(Run([]string{"--export", dest, capturePath}, &stdout, &stderr)).To(Equal(0))
		Expect(filepath.Join(dest, export.DatabaseName)).To(BeAnExistingFile())
		Expect(stdout.String()).To(ContainSubstring("Exported run"))
	})

	It("rejects a missing capture argument", func() {
		Expect(Run(nil, &stdout, &stderr)).To(Equal(2))
		Expect(stderr.String()).To(ContainSubstring("Usage"))
	})

	It("fails on a capture that does not exist", func() {
		Expect(Run([]string{filepath.Join(dir, "missing.dem")}, &stdout, &stderr)).To(Equal(1))
	})
})

func TestDemparse(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Testing demparse")
}

package nodejsgems_test

import (
	"os"
	"path/filepath"
	"testing"

	nodejsgems "github.com/paketo-community/nodejs-gems"
	"github.com/sclevine/spec"

	. "github.com/onsi/gomega"
)

func testPackageJSONParser(t *testing.T, context spec.G, it spec.S) {
	var (
		Expect = NewWithT(t).Expect

		path   string
		parser nodejsgems.PackageJSONParser
	)

	it.Before(func() {
		path = filepath.Join(t.TempDir(), "package.json")
		err := os.WriteFile(path, []byte(`{
			"name": "example-app",
			"engines": { "node": "20.x" },
			"scripts": { "start": "node web.js", "test": "mocha" }
		}`), 0600)
		Expect(err).NotTo(HaveOccurred())

		parser = nodejsgems.NewPackageJSONParser()
	})

	it("parses the node engine range and start script", func() {
		pkg, err := parser.Parse(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(pkg.NodeVersion).To(Equal("20.x"))
		Expect(pkg.StartScript).To(Equal("node web.js"))
		Expect(string(pkg.Raw)).To(ContainSubstring(`"name": "example-app"`))
	})

	context("when engines and scripts are absent", func() {
		it.Before(func() {
			Expect(os.WriteFile(path, []byte(`{"name": "bare-app"}`), 0600)).To(Succeed())
		})

		it("returns empty fields", func() {
			pkg, err := parser.Parse(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(pkg.NodeVersion).To(Equal(""))
			Expect(pkg.StartScript).To(Equal(""))
		})
	})

	context("failure cases", func() {
		context("when the file does not exist", func() {
			it("returns an error", func() {
				_, err := parser.Parse(filepath.Join("missing", "package.json"))
				Expect(err).To(MatchError(os.ErrNotExist))
			})
		})

		context("when the file is not valid JSON", func() {
			it.Before(func() {
				Expect(os.WriteFile(path, []byte(`{{{`), 0600)).To(Succeed())
			})

			it("returns an error", func() {
				_, err := parser.Parse(path)
				Expect(err).To(MatchError(ContainSubstring("failed to parse package.json")))
			})
		})
	})
}

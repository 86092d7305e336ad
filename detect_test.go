package nodejsgems_test

import (
	"os"
	"path/filepath"
	"testing"

	nodejsgems "github.com/paketo-community/nodejs-gems"
	"github.com/sclevine/spec"

	. "github.com/onsi/gomega"
)

func testDetect(t *testing.T, context spec.G, it spec.S) {
	var (
		Expect = NewWithT(t).Expect

		workingDir string
		detect     nodejsgems.DetectFunc
	)

	it.Before(func() {
		var err error
		workingDir, err = os.MkdirTemp("", "working-dir")
		Expect(err).NotTo(HaveOccurred())

		detect = nodejsgems.Detect()
	})

	it.After(func() {
		Expect(os.RemoveAll(workingDir)).To(Succeed())
	})

	context("when the application has a package.json", func() {
		it.Before(func() {
			Expect(os.WriteFile(filepath.Join(workingDir, "package.json"), []byte(`{}`), 0644)).To(Succeed())
		})

		it("passes and reports the buildpack name", func() {
			name, err := detect(nodejsgems.DetectContext{
				WorkingDir: workingDir,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(Equal("NodeJS Gems"))
		})
	})

	context("when the application has no package.json", func() {
		it("fails detection", func() {
			_, err := detect(nodejsgems.DetectContext{
				WorkingDir: workingDir,
			})
			Expect(err).To(MatchError(nodejsgems.Fail))
		})
	})
}

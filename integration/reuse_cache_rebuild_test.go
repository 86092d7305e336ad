package integration

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sclevine/spec"

	. "github.com/onsi/gomega"
)

func testReusingCacheRebuild(t *testing.T, context spec.G, it spec.S) {
	var (
		Expect = NewWithT(t).Expect

		firstWorkingDir  string
		secondWorkingDir string
		cacheDir         string
		logDir           string

		api *httptest.Server
	)

	it.Before(func() {
		var err error
		firstWorkingDir, err = os.MkdirTemp("", "working-dir")
		Expect(err).NotTo(HaveOccurred())

		secondWorkingDir, err = os.MkdirTemp("", "working-dir")
		Expect(err).NotTo(HaveOccurred())

		cacheDir, err = os.MkdirTemp("", "cache-dir")
		Expect(err).NotTo(HaveOccurred())

		logDir, err = os.MkdirTemp("", "exec-log")
		Expect(err).NotTo(HaveOccurred())

		Expect(os.Setenv("EXEC_LOG", filepath.Join(logDir, "executions"))).To(Succeed())

		api = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		for _, dir := range []string{firstWorkingDir, secondWorkingDir} {
			Expect(os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"engines": {"node": "20.x"}}`), 0644)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(dir, ".ruby-version"), []byte("3.3.4\n"), 0644)).To(Succeed())
		}
	})

	it.After(func() {
		api.Close()

		Expect(os.RemoveAll(firstWorkingDir)).To(Succeed())
		Expect(os.RemoveAll(secondWorkingDir)).To(Succeed())
		Expect(os.RemoveAll(cacheDir)).To(Succeed())
		Expect(os.RemoveAll(logDir)).To(Succeed())
	})

	context("when the app is rebuilt and the runtime versions do not change", func() {
		it("reuses the cached runtimes and gemset without touching the network", func() {
			firstLogs, err := runCompile(firstWorkingDir, cacheDir, "", api.URL)
			Expect(err).NotTo(HaveOccurred())

			Expect(firstLogs).To(ContainSubstring("Installing Ruby 3.3.4"))
			Expect(firstLogs).To(ContainSubstring("Installing Node.js 20.17.0"))

			rubyDownloads := requestCount("/ruby-3.3.4.tgz")
			nodeDownloads := requestCount("/node-20.17.0.tgz")
			Expect(rubyDownloads).To(BeNumerically(">", 0))
			Expect(nodeDownloads).To(BeNumerically(">", 0))

			secondLogs, err := runCompile(secondWorkingDir, cacheDir, "", api.URL)
			Expect(err).NotTo(HaveOccurred())

			Expect(secondLogs).To(ContainSubstring("Reusing cached Ruby 3.3.4"))
			Expect(secondLogs).To(ContainSubstring("Reusing cached Node.js 20.17.0"))
			Expect(secondLogs).To(ContainSubstring("Reusing cached gemset"))
			Expect(secondLogs).To(ContainSubstring("Restoring node_modules from cache"))
			Expect(secondLogs).NotTo(ContainSubstring("Installing Ruby"))
			Expect(secondLogs).NotTo(ContainSubstring("Installing Node.js"))

			Expect(requestCount("/ruby-3.3.4.tgz")).To(Equal(rubyDownloads))
			Expect(requestCount("/node-20.17.0.tgz")).To(Equal(nodeDownloads))

			Expect(filepath.Join(secondWorkingDir, ".heroku", "ruby", "bin", "ruby")).To(BeARegularFile())
			Expect(filepath.Join(secondWorkingDir, ".heroku", "node", "bin", "node")).To(BeARegularFile())
			Expect(filepath.Join(secondWorkingDir, ".gs", "bin", "gs")).To(BeARegularFile())

			version, err := os.ReadFile(filepath.Join(secondWorkingDir, ".heroku", "node-version"))
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.TrimSpace(string(version))).To(Equal("20.17.0"))
		})
	})

	context("when the requested versions change between rebuilds", func() {
		it("discards the stale cache and installs the new versions", func() {
			firstLogs, err := runCompile(firstWorkingDir, cacheDir, "", api.URL)
			Expect(err).NotTo(HaveOccurred())

			Expect(firstLogs).To(ContainSubstring("Installing Ruby 3.3.4"))
			Expect(firstLogs).To(ContainSubstring("Installing Node.js 20.17.0"))

			Expect(os.WriteFile(filepath.Join(secondWorkingDir, ".ruby-version"), []byte("3.2.4\n"), 0644)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(secondWorkingDir, "package.json"), []byte(`{"engines": {"node": "22.x"}}`), 0644)).To(Succeed())

			secondLogs, err := runCompile(secondWorkingDir, cacheDir, "", api.URL)
			Expect(err).NotTo(HaveOccurred())

			Expect(secondLogs).To(ContainSubstring("Installing Ruby 3.2.4"))
			Expect(secondLogs).To(ContainSubstring("Installing Node.js 22.7.0"))
			Expect(secondLogs).NotTo(ContainSubstring("Reusing cached Ruby"))
			Expect(secondLogs).NotTo(ContainSubstring("Reusing cached Node.js"))
			Expect(secondLogs).NotTo(ContainSubstring("Reusing cached gemset"))

			Expect(requestCount("/ruby-3.2.4.tgz")).To(BeNumerically(">", 0))
			Expect(requestCount("/node-22.7.0.tgz")).To(BeNumerically(">", 0))

			marker, err := os.ReadFile(filepath.Join(cacheDir, "ruby", "version"))
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.TrimSpace(string(marker))).To(Equal("3.2.4"))

			marker, err = os.ReadFile(filepath.Join(cacheDir, "node", "version"))
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.TrimSpace(string(marker))).To(Equal("22.7.0"))

			marker, err = os.ReadFile(filepath.Join(cacheDir, "ruby", "gemset.version"))
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.TrimSpace(string(marker))).To(Equal("3.2.4"))

			version, err := os.ReadFile(filepath.Join(secondWorkingDir, ".heroku", "node-version"))
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.TrimSpace(string(version))).To(Equal("22.7.0"))
		})
	})
}

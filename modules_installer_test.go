package nodejsgems_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/paketo-buildpacks/packit/v2/pexec"
	nodejsgems "github.com/paketo-community/nodejs-gems"
	"github.com/paketo-community/nodejs-gems/fakes"
	"github.com/sclevine/spec"

	. "github.com/onsi/gomega"
)

func testNodeModulesInstaller(t *testing.T, context spec.G, it spec.S) {
	var (
		Expect = NewWithT(t).Expect

		workingDir string
		cacheDir   string
		buffer     *bytes.Buffer
		executions []pexec.Execution

		npm       *fakes.Executable
		installer nodejsgems.NodeModulesInstaller
	)

	it.Before(func() {
		var err error
		workingDir, err = os.MkdirTemp("", "working-dir")
		Expect(err).NotTo(HaveOccurred())

		cacheDir, err = os.MkdirTemp("", "cache-dir")
		Expect(err).NotTo(HaveOccurred())

		executions = nil
		npm = &fakes.Executable{}
		npm.ExecuteCall.Stub = func(execution pexec.Execution) error {
			executions = append(executions, execution)
			if execution.Args[0] == "install" {
				return os.MkdirAll(filepath.Join(workingDir, "node_modules", "express"), os.ModePerm)
			}
			return nil
		}

		buffer = bytes.NewBuffer(nil)
		installer = nodejsgems.NewNodeModulesInstaller(npm, nodejsgems.NewLogEmitter(buffer))
	})

	it.After(func() {
		Expect(os.RemoveAll(workingDir)).To(Succeed())
		Expect(os.RemoveAll(cacheDir)).To(Succeed())
	})

	it("runs npm install and snapshots the result", func() {
		err := installer.Install(workingDir, cacheDir, []string{"SOME_KEY=some-value"})
		Expect(err).NotTo(HaveOccurred())

		Expect(executions).To(HaveLen(1))
		Expect(executions[0].Args).To(Equal([]string{"install", "--production"}))
		Expect(executions[0].Dir).To(Equal(workingDir))
		Expect(executions[0].Env).To(Equal([]string{"SOME_KEY=some-value"}))

		Expect(filepath.Join(cacheDir, "node_modules", "express")).To(BeADirectory())

		Expect(buffer.String()).To(ContainSubstring("Running 'npm install --production'"))
	})

	context("when the application ships its own node_modules", func() {
		it.Before(func() {
			Expect(os.MkdirAll(filepath.Join(workingDir, "node_modules", "express"), os.ModePerm)).To(Succeed())

			Expect(os.MkdirAll(filepath.Join(cacheDir, "node_modules", "stale-module"), os.ModePerm)).To(Succeed())
		})

		it("prunes and rebuilds instead of restoring the cache", func() {
			err := installer.Install(workingDir, cacheDir, nil)
			Expect(err).NotTo(HaveOccurred())

			var args [][]string
			for _, execution := range executions {
				args = append(args, execution.Args)
			}
			Expect(args).To(Equal([][]string{
				{"prune"},
				{"rebuild"},
				{"install", "--production"},
			}))

			Expect(filepath.Join(workingDir, "node_modules", "stale-module")).NotTo(BeAnExistingFile())
			Expect(filepath.Join(cacheDir, "node_modules", "express")).To(BeADirectory())
			Expect(filepath.Join(cacheDir, "node_modules", "stale-module")).NotTo(BeAnExistingFile())

			Expect(buffer.String()).To(ContainSubstring("Found existing node_modules"))
			Expect(buffer.String()).NotTo(ContainSubstring("Restoring node_modules from cache"))
		})
	})

	context("when the cache holds node_modules", func() {
		it.Before(func() {
			Expect(os.MkdirAll(filepath.Join(cacheDir, "node_modules", "lodash"), os.ModePerm)).To(Succeed())
		})

		it("restores the cache before installing", func() {
			err := installer.Install(workingDir, cacheDir, nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(filepath.Join(workingDir, "node_modules", "lodash")).To(BeADirectory())

			Expect(executions).To(HaveLen(1))
			Expect(executions[0].Args).To(Equal([]string{"install", "--production"}))

			Expect(buffer.String()).To(ContainSubstring("Restoring node_modules from cache"))
		})
	})

	context("when npm install produces no node_modules", func() {
		it.Before(func() {
			npm.ExecuteCall.Stub = func(execution pexec.Execution) error {
				executions = append(executions, execution)
				return nil
			}
		})

		it("skips the cache snapshot", func() {
			err := installer.Install(workingDir, cacheDir, nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(filepath.Join(cacheDir, "node_modules")).NotTo(BeADirectory())
		})
	})

	context("failure cases", func() {
		context("when npm install fails", func() {
			it.Before(func() {
				npm.ExecuteCall.Stub = func(execution pexec.Execution) error {
					fmt.Fprintln(execution.Stdout, "npm ERR! code E404")
					return errors.New("exit status 1")
				}
			})

			it("returns an error and surfaces the output", func() {
				err := installer.Install(workingDir, cacheDir, nil)
				Expect(err).To(MatchError(ContainSubstring("failed to execute 'npm install'")))

				Expect(buffer.String()).To(ContainSubstring("npm ERR! code E404"))
			})
		})

		context("when npm prune fails", func() {
			it.Before(func() {
				Expect(os.MkdirAll(filepath.Join(workingDir, "node_modules"), os.ModePerm)).To(Succeed())

				npm.ExecuteCall.Stub = func(execution pexec.Execution) error {
					return errors.New("exit status 1")
				}
			})

			it("returns an error", func() {
				err := installer.Install(workingDir, cacheDir, nil)
				Expect(err).To(MatchError(ContainSubstring("failed to execute 'npm prune'")))
			})
		})
	})
}

package nodejsgems

import (
	"os"
	"path/filepath"
)

// nodeProfileScript and gemsetProfileScript are sourced by the dyno shell at
// launch. They reference $HOME rather than the build-time paths because the
// application is relocated before boot.
const (
	nodeProfileScript = `export PATH="$HOME/.heroku/node/bin:$HOME/node_modules/.bin:$PATH"
export NODE_HOME="$HOME/.heroku/node"
`

	gemsetProfileScript = `export GEM_HOME="$HOME/.gs"
export GEM_PATH="$HOME/.gs"
export PATH="$HOME/.gs/bin:$HOME/.heroku/ruby/bin:$PATH"
`
)

// ProfileScriptWriter drops launch environment scripts into .profile.d so the
// installed runtimes and gemset resolve at boot.
type ProfileScriptWriter struct{}

func NewProfileScriptWriter() ProfileScriptWriter {
	return ProfileScriptWriter{}
}

func (w ProfileScriptWriter) Write(workingDir string) error {
	profileD := filepath.Join(workingDir, ".profile.d")

	err := os.MkdirAll(profileD, os.ModePerm)
	if err != nil {
		return err
	}

	err = os.WriteFile(filepath.Join(profileD, "nodejs.sh"), []byte(nodeProfileScript), 0644)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(profileD, "gs.sh"), []byte(gemsetProfileScript), 0644)
}

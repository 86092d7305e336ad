package fakes

import "sync"

type GemInstaller struct {
	InstallCall struct {
		mutex     sync.Mutex
		CallCount int
		Receives  struct {
			WorkingDir  string
			CacheDir    string
			RubyVersion string
			Env         []string
		}
		Returns struct {
			Error error
		}
		Stub func(string, string, string, []string) error
	}
}

func (f *GemInstaller) Install(param1 string, param2 string, param3 string, param4 []string) error {
	f.InstallCall.mutex.Lock()
	defer f.InstallCall.mutex.Unlock()
	f.InstallCall.CallCount++
	f.InstallCall.Receives.WorkingDir = param1
	f.InstallCall.Receives.CacheDir = param2
	f.InstallCall.Receives.RubyVersion = param3
	f.InstallCall.Receives.Env = param4
	if f.InstallCall.Stub != nil {
		return f.InstallCall.Stub(param1, param2, param3, param4)
	}
	return f.InstallCall.Returns.Error
}

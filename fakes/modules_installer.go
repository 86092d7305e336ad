package fakes

import "sync"

type ModulesInstaller struct {
	InstallCall struct {
		mutex     sync.Mutex
		CallCount int
		Receives  struct {
			WorkingDir string
			CacheDir   string
			Env        []string
		}
		Returns struct {
			Error error
		}
		Stub func(string, string, []string) error
	}
}

func (f *ModulesInstaller) Install(param1 string, param2 string, param3 []string) error {
	f.InstallCall.mutex.Lock()
	defer f.InstallCall.mutex.Unlock()
	f.InstallCall.CallCount++
	f.InstallCall.Receives.WorkingDir = param1
	f.InstallCall.Receives.CacheDir = param2
	f.InstallCall.Receives.Env = param3
	if f.InstallCall.Stub != nil {
		return f.InstallCall.Stub(param1, param2, param3)
	}
	return f.InstallCall.Returns.Error
}

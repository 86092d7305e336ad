package fakes

import "sync"

type CacheManager struct {
	CacheCall struct {
		mutex     sync.Mutex
		CallCount int
		Receives  struct {
			Section string
			Source  string
			Version string
		}
		Returns struct {
			Error error
		}
		Stub func(string, string, string) error
	}
	MatchCall struct {
		mutex     sync.Mutex
		CallCount int
		Receives  struct {
			Section string
			Version string
		}
		Returns struct {
			Match bool
			Err   error
		}
		Stub func(string, string) (bool, error)
	}
	RestoreCall struct {
		mutex     sync.Mutex
		CallCount int
		Receives  struct {
			Section     string
			Destination string
		}
		Returns struct {
			Error error
		}
		Stub func(string, string) error
	}
}

func (f *CacheManager) Cache(param1 string, param2 string, param3 string) error {
	f.CacheCall.mutex.Lock()
	defer f.CacheCall.mutex.Unlock()
	f.CacheCall.CallCount++
	f.CacheCall.Receives.Section = param1
	f.CacheCall.Receives.Source = param2
	f.CacheCall.Receives.Version = param3
	if f.CacheCall.Stub != nil {
		return f.CacheCall.Stub(param1, param2, param3)
	}
	return f.CacheCall.Returns.Error
}

func (f *CacheManager) Match(param1 string, param2 string) (bool, error) {
	f.MatchCall.mutex.Lock()
	defer f.MatchCall.mutex.Unlock()
	f.MatchCall.CallCount++
	f.MatchCall.Receives.Section = param1
	f.MatchCall.Receives.Version = param2
	if f.MatchCall.Stub != nil {
		return f.MatchCall.Stub(param1, param2)
	}
	return f.MatchCall.Returns.Match, f.MatchCall.Returns.Err
}

func (f *CacheManager) Restore(param1 string, param2 string) error {
	f.RestoreCall.mutex.Lock()
	defer f.RestoreCall.mutex.Unlock()
	f.RestoreCall.CallCount++
	f.RestoreCall.Receives.Section = param1
	f.RestoreCall.Receives.Destination = param2
	if f.RestoreCall.Stub != nil {
		return f.RestoreCall.Stub(param1, param2)
	}
	return f.RestoreCall.Returns.Error
}

package config

// SetUserHomeDirForTest overrides the resolver used to locate the global
// ~/.scrawl directory, returning a restore function. Tests point it at a
// temp dir so they never read a real user config.
func SetUserHomeDirForTest(fn func() (string, error)) func() {
	orig := userHomeDir
	userHomeDir = fn
	return func() {
		userHomeDir = orig
	}
}

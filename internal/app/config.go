package app

// Config holds runtime wiring options for building the app.
type Config struct {
	Datadir    string // data directory; empty means the platform default
	KeyName    string // private key file name, empty means the default
	Difficulty int    // required key difficulty, 0..255
}

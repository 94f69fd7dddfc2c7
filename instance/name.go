package instance

// AppName is what the app will call itself, and the base name of its settings
// file.
var AppName = "matchpick"

package animal

// Version is the current release of the module.
const Version = "1.0.0"

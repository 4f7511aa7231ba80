package models

// UserAgent is sent with every outgoing request to the employee API.
const UserAgent = "athena-directory/1.0 (+https://github.com/UnknownOlympus/athena)"

package model

// Version is the released version of awsicons.
const Version = "0.2.0"

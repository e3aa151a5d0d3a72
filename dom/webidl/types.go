package webidl

// https://heycam.github.io/webidl/#idl-DOMString
type DOMString string

// https://w3c.github.io/hr-time/#dom-domhighrestimestamp
type DOMHighResTimeStamp uint64

package server

import "time"

// ReadHeaderTimeout bounds how long a client may take to send headers.
const ReadHeaderTimeout = 5 * time.Second

// Command todos serves the read-only Todo query API.
//
// Usage:
//
//	# Start the server using config/config.yml
//	todos serve
//
//	# Use another config directory and port
//	todos serve --config-dir /etc/todos --port 4567
//
//	# Print the effective configuration
//	todos config
package main

func main() {
	Execute()
}

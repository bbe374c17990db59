// Package commands wires the cpw command line verbs.
package commands

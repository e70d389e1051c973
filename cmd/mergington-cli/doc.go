// Command mergington-cli talks to a mergington-server over HTTP.
//
// Usage:
//
//	mergington-cli activities list
//	mergington-cli activities signup "Chess Club" student@mergington.edu
//	mergington-cli login -u mchen -p ...
//	MERGINGTON_TOKEN=mhtk_... mergington-cli activities unregister "Chess Club" student@mergington.edu
package main

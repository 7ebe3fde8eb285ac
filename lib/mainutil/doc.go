// Package mainutil provides miscellaneous tools for implementing the main()
// function of the mimetable command line tools: logging setup, version
// reporting, ZooKeeper and etcd client configuration, and run metrics.
//
package mainutil

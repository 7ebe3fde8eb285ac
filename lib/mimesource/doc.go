// Package mimesource reads the full text of a MIME type registry from a
// source identifier.
//
// Supported identifiers:
//
//	/abs/path, rel/path, ~/path, ${VAR}/path
//	file:///abs/path
//	http://host/path, https://host/path
//	zk://zk1:2181,zk2/node/path?sessionTimeout=10s&username=u&password=@file
//	etcd://etcd1:2379,etcd2/key?tls&username=u&password=p
//	embedded:
//
// The query string of a zk:// or etcd:// identifier carries the options
// understood by mainutil.ZKConfig and mainutil.EtcdConfig respectively.
//
// Every failure is a SourceError naming the identifier and the Stage at
// which the read failed.  A failed read is never retried.
package mimesource

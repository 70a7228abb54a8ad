package main

import (
	"flag"
	"io/ioutil"

	"github.com/treeforest/lifo/config"
	"github.com/treeforest/lifo/script"
	log "github.com/treeforest/logger"
)

var path = flag.String("conf", "config.yaml", "lifo config path")

func main() {
	flag.Parse()

	conf, err := config.Load(*path)
	if err != nil {
		log.Fatalf("load config failed: %+v", err)
	}
	if conf.Debug {
		log.SetLevel(log.DEBUG)
	}

	data, _ := conf.Marshal()
	log.Debug("config:\n", string(data))

	data, err = ioutil.ReadFile(conf.Script)
	if err != nil {
		log.Fatalf("read script [%s] failed: %v", conf.Script, err)
	}

	ops, err := script.Decode(data)
	if err != nil {
		log.Fatal("decode script failed:", err)
	}

	e := script.Engine{Ops: ops, MaxSteps: conf.MaxSteps}
	results, err := e.Run()
	if err != nil {
		log.Fatal("run script failed:", err)
	}

	for i, r := range results {
		switch r.Op.Code {
		case script.PUSH:
			log.Infof("[%d] push %q", i, r.Op.Data)
		case script.EMPTY:
			log.Infof("[%d] empty %v", i, r.Ok)
		default:
			if !r.Ok {
				log.Infof("[%d] %s <none>", i, r.Op.Code)
				continue
			}
			log.Infof("[%d] %s %q", i, r.Op.Code, r.Value)
		}
	}
}

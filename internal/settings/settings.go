package settings

const CmdName = "zoneprof"

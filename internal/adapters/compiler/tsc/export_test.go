package tsc

var ParseOutput = parseOutput

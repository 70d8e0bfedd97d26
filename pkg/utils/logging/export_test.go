package logging

const DefaultOutputForTest = defaultOutput

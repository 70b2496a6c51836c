package store

var RebindDollar = rebindDollar

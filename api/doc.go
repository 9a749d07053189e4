// Package api builds typed, reusable HTTP API calls: a declarative binding
// of method + path template + codecs that turns a domain value into a
// request and the response back into a domain value.
//
// A Base holds the shared mutable configuration (base URL, timeout,
// default headers, transport engine, interceptors). Call objects minted
// from it are immutable and read the Base on every invocation, so
// configuration updates apply to all derived calls without rebuilding
// them.
//
//	binding, _ := transport.NewPooled()
//	base := api.New(binding)
//	_ = base.SetBaseURL("http://localhost:3000")
//	base.SetTimeout(10 * time.Second)
//	base.AddInterceptor(interceptor.Bearer("MY_TOKEN"))
//
//	type Product struct {
//	    Name string `json:"name"`
//	    Age  string `json:"age"`
//	}
//
//	getProduct := api.NewNoBody[Product](base, http.MethodGet,
//	    "/products/{id}", codec.JSONDeserializer[Product]{})
//
//	product, err := getProduct.Call(ctx, api.Params("id", "3"))
//
// Every failure is an *api.Error with a Kind that tells templating,
// configuration, codec, interceptor, transport, and protocol errors
// apart; see the Is* helpers.
package api
